package store

import (
	"time"

	"shopsettings/internal/settings"

	"github.com/sirupsen/logrus"
)

// jetpackBannerDismissalDays is how many whole calendar days the Jetpack
// benefits banner stays hidden after a dismissal.
const jetpackBannerDismissalDays = 5

// setInstallationDateIfNecessary persists date as the installation date
// only when none exists or date is strictly earlier. Returns whether the
// stored date changed.
func (s *Store) setInstallationDateIfNecessary(date time.Time) (bool, error) {
	current := s.generalSettings.Settings()
	if current.InstallationDate != nil && !date.Before(*current.InstallationDate) {
		return false, nil
	}

	current.InstallationDate = &date
	if err := s.generalSettings.Save(current); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) updateFeedbackStatus(t settings.FeedbackType, status settings.FeedbackStatus) error {
	now := s.Now()
	updated := s.generalSettings.Settings().ReplacingFeedback(settings.FeedbackSetting{
		Name:      t,
		Status:    status,
		LastShown: &now,
	})
	return s.generalSettings.Save(updated)
}

func (s *Store) loadFeedbackVisibility(t settings.FeedbackType) (bool, error) {
	return s.FeedbackVisibility(s.generalSettings.Settings(), t)
}

func (s *Store) setFeatureSwitchState(flag settings.FeatureFlag, enabled bool) error {
	updated := s.generalSettings.Settings().ReplacingFlag(flag, enabled)
	return s.generalSettings.Save(updated)
}

func (s *Store) loadEligibilityErrorInfo() (settings.EligibilityErrorInfo, error) {
	info := s.generalSettings.Settings().LastEligibilityErrorInfo
	if info == nil {
		return settings.EligibilityErrorInfo{}, ErrNoEligibilityErrorInfo
	}
	return *info, nil
}

func (s *Store) setEligibilityErrorInfo(info *settings.EligibilityErrorInfo) error {
	current := s.generalSettings.Settings()
	current.LastEligibilityErrorInfo = info
	return s.generalSettings.Save(current)
}

func (s *Store) setJetpackBannerLastDismissedTime(t time.Time) {
	current := s.generalSettings.Settings()
	current.LastJetpackBannerDismissedTime = &t
	if err := s.generalSettings.Save(current); err != nil {
		logrus.WithField("error", err).Error("Failed to save Jetpack banner dismissal time")
	}
}

// loadJetpackBannerVisibility reports whether the Jetpack benefits banner
// should show: always when never dismissed or day math is impossible,
// otherwise once enough complete days have elapsed since the dismissal.
func (s *Store) loadJetpackBannerVisibility(currentTime time.Time, loc *time.Location) bool {
	dismissed := s.generalSettings.Settings().LastJetpackBannerDismissedTime
	if dismissed == nil {
		return true
	}
	if loc == nil {
		return true
	}
	return elapsedDays(*dismissed, currentTime, loc) >= jetpackBannerDismissalDays
}

// elapsedDays counts complete days anchored at from: the largest n for
// which from plus n calendar days in loc is not after to. A dismissal at
// 23:30 completes its first day at 23:30 the next day, not at midnight.
// Calendar arithmetic keeps the count stable across DST transitions.
func elapsedDays(from, to time.Time, loc *time.Location) int {
	f := from.In(loc)
	t := to.In(loc)
	if t.Before(f) {
		return 0
	}

	// The elapsed-hours estimate is off by at most a day around DST
	// transitions; the loops settle it on the calendar answer.
	days := int(t.Sub(f).Hours() / 24)
	for days > 0 && f.AddDate(0, 0, days).After(t) {
		days--
	}
	for !f.AddDate(0, 0, days+1).After(t) {
		days++
	}
	return days
}

// rememberCardReader retains cardReaderID for automatic reconnection. A
// reader that is already remembered is a no-op success. At most one
// reader is persisted, as a single-element list for backward format
// compatibility.
func (s *Store) rememberCardReader(cardReaderID string) error {
	current := s.generalSettings.Settings()
	for _, known := range current.KnownCardReaders {
		if known == cardReaderID {
			return nil
		}
	}

	current.KnownCardReaders = []string{cardReaderID}
	return s.generalSettings.Save(current)
}

// forgetCardReader always persists an empty reader list, regardless of
// prior state.
func (s *Store) forgetCardReader() error {
	current := s.generalSettings.Settings()
	current.KnownCardReaders = []string{}
	return s.generalSettings.Save(current)
}

// loadCardReader returns the most recently remembered reader. The last
// element wins so multi-element lists written by older app versions still
// resolve.
func (s *Store) loadCardReader() (string, error) {
	readers := s.generalSettings.Settings().KnownCardReaders
	if len(readers) == 0 {
		return "", nil
	}
	return readers[len(readers)-1], nil
}

// setFeatureAnnouncementDismissed records a campaign dismissal. Without a
// remind-after period nothing is persisted and the completion reports
// false; the caller still hears back.
func (s *Store) setFeatureAnnouncementDismissed(
	campaign settings.FeatureAnnouncementCampaign,
	remindAfterDays *int,
	onCompletion func(bool, error),
) {
	if remindAfterDays == nil {
		if onCompletion != nil {
			onCompletion(false, nil)
		}
		return
	}

	now := s.Now()
	remindAfter := now.AddDate(0, 0, *remindAfterDays)
	updated := s.generalSettings.Settings().ReplacingCampaignSettings(campaign,
		settings.FeatureAnnouncementCampaignSettings{
			DismissedDate: &now,
			RemindAfter:   &remindAfter,
		})

	err := s.generalSettings.Save(updated)
	if onCompletion == nil {
		return
	}
	if err != nil {
		onCompletion(false, err)
		return
	}
	onCompletion(true, nil)
}

// featureAnnouncementVisibility reports whether a campaign's announcement
// card should show: always when unconfigured; when a remind-after time is
// set, once it has passed; otherwise only if never dismissed.
func (s *Store) featureAnnouncementVisibility(campaign settings.FeatureAnnouncementCampaign) (bool, error) {
	cs, ok := s.generalSettings.Settings().FeatureAnnouncementCampaignSettings[campaign]
	if !ok {
		return true, nil
	}
	if cs.RemindAfter != nil {
		return cs.RemindAfter.Before(s.Now()), nil
	}
	return cs.DismissedDate == nil, nil
}

// markSiteHasIPPTransactionFinished adds the site to the finished-IPP
// set. Monotone and idempotent; a save failure is logged, not surfaced.
func (s *Store) markSiteHasIPPTransactionFinished(siteID int64) {
	current := s.generalSettings.Settings()
	updated := current
	updated.SitesWithAtLeastOneIPPTransactionFinished =
		current.SitesWithAtLeastOneIPPTransactionFinished.Inserting(siteID)

	if err := s.generalSettings.Save(updated); err != nil {
		logrus.WithFields(logrus.Fields{"site_id": siteID, "error": err}).
			Error("Failed to mark site as having a finished IPP transaction")
	}
}
