package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/utils"
)

const (
	defaultRulesName = "default"
	rulesCacheKey    = "cache:rewards:rules"
	rulesCacheTTL    = 5 * time.Minute
)

// ErrRulesUnavailable is returned when the rule document cannot be loaded.
// Callers must fail closed: no rules, no payout.
var ErrRulesUnavailable = errors.New("reward rules unavailable")

// RulesSource loads the versioned rule document from the configuration store,
// with a short Redis cache in front of it.
type RulesSource struct {
	db   *gorm.DB
	name string
}

// NewRulesSource creates a source reading the named rule document.
func NewRulesSource(db *gorm.DB) *RulesSource {
	return &RulesSource{db: db, name: defaultRulesName}
}

// Load returns the current rules, preferring the cache. A missing or
// unreadable document is an error, never a silent fallback to defaults.
func (r *RulesSource) Load(ctx context.Context) (*Rules, error) {
	if b, ok := utils.CacheGetBytes(rulesCacheKey); ok {
		var rules Rules
		if err := json.Unmarshal(b, &rules); err == nil {
			return &rules, nil
		}
		// poisoned cache entry, fall through to the store
	}

	var row models.RewardConfig
	if err := r.db.WithContext(ctx).Where("name = ?", r.name).First(&row).Error; err != nil {
		utils.Sugar.Errorw("reward rules load failed", "name", r.name, "err", err)
		return nil, ErrRulesUnavailable
	}

	var rules Rules
	if err := json.Unmarshal([]byte(row.Payload), &rules); err != nil {
		utils.Sugar.Errorw("reward rules payload malformed", "name", r.name, "err", err)
		return nil, ErrRulesUnavailable
	}

	utils.CacheSetBytes(rulesCacheKey, []byte(row.Payload), rulesCacheTTL)
	return &rules, nil
}

// EnsureDefault seeds the configuration store with DefaultRules when no rule
// document exists yet. Called once at boot.
func (r *RulesSource) EnsureDefault() error {
	var count int64
	if err := r.db.Model(&models.RewardConfig{}).Where("name = ?", r.name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	payload, err := json.Marshal(DefaultRules())
	if err != nil {
		return err
	}
	return r.db.Create(&models.RewardConfig{
		Name:    r.name,
		Version: DefaultRules().Version,
		Payload: string(payload),
	}).Error
}

// Update replaces the stored rule document and drops the cache so the new
// version takes effect on the next grant.
func (r *RulesSource) Update(ctx context.Context, rules *Rules) error {
	payload, err := json.Marshal(rules)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&models.RewardConfig{}).
		Where("name = ?", r.name).
		Updates(map[string]interface{}{"version": rules.Version, "payload": string(payload)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(&models.RewardConfig{
			Name:    r.name,
			Version: rules.Version,
			Payload: string(payload),
		}).Error; err != nil {
			return err
		}
	}

	r.Invalidate()
	return nil
}

// Invalidate drops the cached rule document so the next Load hits the store.
func (r *RulesSource) Invalidate() {
	utils.InvalidateByPrefix(rulesCacheKey)
}
