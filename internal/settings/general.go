// Package settings defines the persisted record types of the settings
// engine: the singleton app-wide settings record and the per-site document
// families, together with the accessor for the app-wide record.
//
// All record types have value semantics: mutation happens through
// Replacing* helpers that return a modified copy, never in place. The
// zero value of every record is its default state.
package settings

import (
	"encoding/json"
	"sort"
	"time"
)

// FeatureFlag identifies one named boolean feature switch.
type FeatureFlag string

// Known feature switches.
const (
	FlagViewAddOns             FeatureFlag = "viewAddOns"
	FlagProductSKUInputScanner FeatureFlag = "productSKUInputScanner"
	FlagCouponManagement       FeatureFlag = "couponManagement"
	FlagProductMultiSelection  FeatureFlag = "productMultiSelection"
	FlagInAppPurchases         FeatureFlag = "inAppPurchases"
	FlagPointOfSale            FeatureFlag = "pointOfSale"
)

// featureFlagKeys maps each flag to the JSON key it persists under. The
// keys predate the table-driven mechanism and must not change, or settings
// written by earlier app versions stop deserializing.
var featureFlagKeys = map[FeatureFlag]string{
	FlagViewAddOns:             "isViewAddOnsSwitchEnabled",
	FlagProductSKUInputScanner: "isProductSKUInputScannerSwitchEnabled",
	FlagCouponManagement:       "isCouponManagementSwitchEnabled",
	FlagProductMultiSelection:  "isProductMultiSelectionSwitchEnabled",
	FlagInAppPurchases:         "isInAppPurchasesSwitchEnabled",
	FlagPointOfSale:            "isPointOfSaleSwitchEnabled",
}

// KnownFeatureFlags returns every flag the record can persist.
func KnownFeatureFlags() []FeatureFlag {
	flags := make([]FeatureFlag, 0, len(featureFlagKeys))
	for flag := range featureFlagKeys {
		flags = append(flags, flag)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// EligibilityErrorInfo caches why a user's role was deemed insufficient
// for a store, so the error screen can render offline.
type EligibilityErrorInfo struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// FeatureAnnouncementCampaign identifies one feature-announcement card.
type FeatureAnnouncementCampaign string

// FeatureAnnouncementCampaignSettings records the dismissal state of one
// campaign's announcement card.
type FeatureAnnouncementCampaignSettings struct {
	DismissedDate *time.Time `json:"dismissedDate,omitempty"`
	RemindAfter   *time.Time `json:"remindAfter,omitempty"`
}

// GeneralAppSettings is the singleton app-wide settings record. It is
// always logically present: an absent or unreadable backing document
// yields the zero value.
type GeneralAppSettings struct {
	// InstallationDate is the earliest known install date of the app.
	InstallationDate *time.Time

	// Feedbacks tracks the in-app feedback state per feedback type.
	Feedbacks map[FeedbackType]FeedbackSetting

	// featureFlags holds only flags that have been explicitly set; absent
	// flags report false. Unexported so all access goes through Flag and
	// ReplacingFlag, which keep the persisted key table authoritative.
	featureFlags map[FeatureFlag]bool

	// LastEligibilityErrorInfo is the most recent role-eligibility
	// failure, or nil when cleared.
	LastEligibilityErrorInfo *EligibilityErrorInfo

	// LastJetpackBannerDismissedTime is when the Jetpack benefits banner
	// was last dismissed, or nil if never.
	LastJetpackBannerDismissedTime *time.Time

	// KnownCardReaders lists remembered card reader IDs. At most one is
	// retained; the list shape is kept for backward format compatibility.
	KnownCardReaders []string

	// FeatureAnnouncementCampaignSettings tracks announcement dismissals
	// per campaign.
	FeatureAnnouncementCampaignSettings map[FeatureAnnouncementCampaign]FeatureAnnouncementCampaignSettings

	// SitesWithAtLeastOneIPPTransactionFinished holds every site that has
	// completed at least one in-person payment.
	SitesWithAtLeastOneIPPTransactionFinished Int64Set
}

// Flag returns the state of a feature switch, false if never set.
func (s GeneralAppSettings) Flag(id FeatureFlag) bool {
	return s.featureFlags[id]
}

// ReplacingFlag returns a copy with one feature switch set.
func (s GeneralAppSettings) ReplacingFlag(id FeatureFlag, enabled bool) GeneralAppSettings {
	flags := make(map[FeatureFlag]bool, len(s.featureFlags)+1)
	for k, v := range s.featureFlags {
		flags[k] = v
	}
	flags[id] = enabled
	s.featureFlags = flags
	return s
}

// ReplacingFeedback returns a copy with one feedback type's record
// replaced, preserving all others.
func (s GeneralAppSettings) ReplacingFeedback(feedback FeedbackSetting) GeneralAppSettings {
	feedbacks := make(map[FeedbackType]FeedbackSetting, len(s.Feedbacks)+1)
	for k, v := range s.Feedbacks {
		feedbacks[k] = v
	}
	feedbacks[feedback.Name] = feedback
	s.Feedbacks = feedbacks
	return s
}

// ReplacingCampaignSettings returns a copy with one campaign's dismissal
// state replaced, preserving all others.
func (s GeneralAppSettings) ReplacingCampaignSettings(
	campaign FeatureAnnouncementCampaign,
	cs FeatureAnnouncementCampaignSettings,
) GeneralAppSettings {
	all := make(map[FeatureAnnouncementCampaign]FeatureAnnouncementCampaignSettings,
		len(s.FeatureAnnouncementCampaignSettings)+1)
	for k, v := range s.FeatureAnnouncementCampaignSettings {
		all[k] = v
	}
	all[campaign] = cs
	s.FeatureAnnouncementCampaignSettings = all
	return s
}

// generalAppSettingsFixed is the JSON shape of everything except the
// feature switches, which persist under their legacy per-flag keys.
type generalAppSettingsFixed struct {
	InstallationDate                          *time.Time                                                          `json:"installationDate,omitempty"`
	Feedbacks                                 map[FeedbackType]FeedbackSetting                                    `json:"feedbacks,omitempty"`
	LastEligibilityErrorInfo                  *EligibilityErrorInfo                                               `json:"lastEligibilityErrorInfo,omitempty"`
	LastJetpackBannerDismissedTime            *time.Time                                                          `json:"lastJetpackBenefitsBannerDismissedTime,omitempty"`
	KnownCardReaders                          []string                                                            `json:"knownCardReaders"`
	FeatureAnnouncementCampaignSettings       map[FeatureAnnouncementCampaign]FeatureAnnouncementCampaignSettings `json:"featureAnnouncementCampaignSettings,omitempty"`
	SitesWithAtLeastOneIPPTransactionFinished Int64Set                                                            `json:"sitesWithAtLeastOneIPPTransactionFinished,omitempty"`
}

// MarshalJSON writes the fixed fields plus each explicitly set feature
// switch under its legacy key.
func (s GeneralAppSettings) MarshalJSON() ([]byte, error) {
	fixed := generalAppSettingsFixed{
		InstallationDate:                          s.InstallationDate,
		Feedbacks:                                 s.Feedbacks,
		LastEligibilityErrorInfo:                  s.LastEligibilityErrorInfo,
		LastJetpackBannerDismissedTime:            s.LastJetpackBannerDismissedTime,
		KnownCardReaders:                          s.KnownCardReaders,
		FeatureAnnouncementCampaignSettings:       s.FeatureAnnouncementCampaignSettings,
		SitesWithAtLeastOneIPPTransactionFinished: s.SitesWithAtLeastOneIPPTransactionFinished,
	}
	if fixed.KnownCardReaders == nil {
		fixed.KnownCardReaders = []string{}
	}

	raw, err := json.Marshal(fixed)
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	for flag, enabled := range s.featureFlags {
		key, known := featureFlagKeys[flag]
		if !known {
			continue
		}
		value, err := json.Marshal(enabled)
		if err != nil {
			return nil, err
		}
		doc[key] = value
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads the fixed fields and picks each feature switch out
// of its legacy key.
func (s *GeneralAppSettings) UnmarshalJSON(data []byte) error {
	var fixed generalAppSettingsFixed
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	flags := make(map[FeatureFlag]bool)
	for flag, key := range featureFlagKeys {
		raw, present := doc[key]
		if !present {
			continue
		}
		var enabled bool
		if err := json.Unmarshal(raw, &enabled); err != nil {
			return err
		}
		flags[flag] = enabled
	}

	*s = GeneralAppSettings{
		InstallationDate:                          fixed.InstallationDate,
		Feedbacks:                                 fixed.Feedbacks,
		featureFlags:                              flags,
		LastEligibilityErrorInfo:                  fixed.LastEligibilityErrorInfo,
		LastJetpackBannerDismissedTime:            fixed.LastJetpackBannerDismissedTime,
		KnownCardReaders:                          fixed.KnownCardReaders,
		FeatureAnnouncementCampaignSettings:       fixed.FeatureAnnouncementCampaignSettings,
		SitesWithAtLeastOneIPPTransactionFinished: fixed.SitesWithAtLeastOneIPPTransactionFinished,
	}
	return nil
}

// Int64Set is a set of 64-bit IDs persisted as a sorted JSON array.
type Int64Set map[int64]struct{}

// Contains reports set membership.
func (s Int64Set) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Inserting returns a copy of the set with id added.
func (s Int64Set) Inserting(id int64) Int64Set {
	out := make(Int64Set, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[id] = struct{}{}
	return out
}

// MarshalJSON encodes the set as a sorted array for stable output.
func (s Int64Set) MarshalJSON() ([]byte, error) {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return json.Marshal(ids)
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Int64Set) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	out := make(Int64Set, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	*s = out
	return nil
}
