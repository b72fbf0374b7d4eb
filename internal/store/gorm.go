package store

import (
	"errors"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm connection in the Store interface.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- users ----------

func (s *gormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// ---------- entries ----------

func (s *gormStore) ListEntries(userID string, filter EntryFilter) ([]models.Entry, error) {
	q := s.db.Where("user_id = ?", userID)
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date < ?", *filter.To)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		q = q.Where("item LIKE ?", "%"+filter.Search+"%")
	}

	var entries []models.Entry
	if err := q.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *gormStore) GetEntry(id, userID string) (*models.Entry, error) {
	var entry models.Entry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &entry, nil
}

func (s *gormStore) CreateEntry(entry *models.Entry) error {
	return s.db.Create(entry).Error
}

func (s *gormStore) UpdateEntry(id, userID string, patch EntryPatch) (*models.Entry, error) {
	updates := map[string]interface{}{}
	if patch.Item != nil {
		updates["item"] = *patch.Item
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.Entry{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetEntry(id, userID)
}

func (s *gormStore) DeleteEntry(id, userID string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Entry{}).Error
}

// ---------- transfers ----------

func (s *gormStore) ListTransfers(userID string) ([]models.Transfer, error) {
	var transfers []models.Transfer
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}

func (s *gormStore) GetTransfer(id, userID string) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&transfer).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &transfer, nil
}

func (s *gormStore) CreateTransferLinked(userID string, total decimal.Decimal, method, status string, entryIDs []string) (*models.Transfer, error) {
	transfer := models.Transfer{
		UserID:      userID,
		TotalAmount: total,
		Method:      method,
		Status:      status,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transfer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Entry{}).
			Where("id IN ? AND user_id = ?", entryIDs, userID).
			Update("transfer_id", transfer.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (s *gormStore) CompleteTransfer(id, userID string) (*models.Transfer, error) {
	// Stamped unconditionally: re-completing an already completed transfer
	// leaves it completed.
	now := time.Now()
	res := s.db.Model(&models.Transfer{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":       models.StatusCompleted,
			"completed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTransfer(id, userID)
}

func (s *gormStore) LinkEntries(entryIDs []string, transferID, userID string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	return s.db.Model(&models.Entry{}).
		Where("id IN ? AND user_id = ?", entryIDs, userID).
		Update("transfer_id", transferID).Error
}

// ---------- preferences ----------

func (s *gormStore) GetPreferences(userID string) (*models.Preference, error) {
	var prefs models.Preference
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &prefs, nil
}

func (s *gormStore) EnsurePreferences(userID string) (*models.Preference, error) {
	prefs, err := s.GetPreferences(userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := models.Preference{
		UserID:       userID,
		BankProvider: models.ProviderManual,
		MonthlyGoal:  decimal.New(0, -2),
		YearlyGoal:   decimal.New(0, -2),
	}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *gormStore) UpdatePreferences(userID string, patch PreferencePatch) (*models.Preference, error) {
	if _, err := s.EnsurePreferences(userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.BankProvider != nil {
		updates["bank_provider"] = *patch.BankProvider
	}
	if patch.FromAccountLabel != nil {
		updates["from_account_label"] = *patch.FromAccountLabel
	}
	if patch.ToAccountLabel != nil {
		updates["to_account_label"] = *patch.ToAccountLabel
	}
	if patch.SandboxItemID != nil {
		updates["sandbox_item_id"] = *patch.SandboxItemID
	}
	if patch.SandboxFromID != nil {
		updates["sandbox_from_id"] = *patch.SandboxFromID
	}
	if patch.SandboxToID != nil {
		updates["sandbox_to_id"] = *patch.SandboxToID
	}
	if patch.MonthlyGoal != nil {
		updates["monthly_goal"] = *patch.MonthlyGoal
	}
	if patch.YearlyGoal != nil {
		updates["yearly_goal"] = *patch.YearlyGoal
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Preference{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetPreferences(userID)
}

// ---------- audit ----------

func (s *gormStore) CreateAuditLog(log *models.AuditLog) error {
	return s.db.Create(log).Error
}

func (s *gormStore) ListAuditLogs(userID string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []models.AuditLog
	if err := s.db.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
