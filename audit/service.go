package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kasuganosora/packmule/equipment"
	"github.com/kasuganosora/packmule/inventory"
	"github.com/kasuganosora/packmule/model"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service records management actions to the history file and, when a
// database is configured, to the action_logs table. Writes are synchronous.
type Service struct {
	runID  string
	path   string
	db     *gorm.DB
	logger *zap.Logger
}

// New creates a history service. An empty path disables the text log and a
// nil db disables the database sink.
func New(runID, path string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{runID: runID, path: path, db: db, logger: logger}
}

// Enabled reports whether any sink is configured.
func (svc *Service) Enabled() bool {
	return svc.path != "" || svc.db != nil
}

// Record logs action against rec. Both sinks are attempted; their errors are joined.
func (svc *Service) Record(action string, rec equipment.Record) error {
	var errs []error
	if svc.path != "" {
		if err := svc.appendText(action, rec); err != nil {
			errs = append(errs, err)
		}
	}
	if svc.db != nil {
		if err := svc.insert(action, rec); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err == nil {
		svc.logger.Debug("history recorded",
			zap.String("action", action),
			zap.String("item", rec.Name))
	}
	return err
}

// Snapshot stores the final state of inv. It is a no-op without a database.
func (svc *Service) Snapshot(inv *inventory.Inventory) error {
	if svc.db == nil {
		return nil
	}
	items := make([]equipment.Record, 0, inv.Len())
	for _, rec := range inv.Items() {
		items = append(items, rec)
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("history: encode items: %w", err)
	}
	snap := &model.InventorySnapshot{
		RunID:         svc.runID,
		ItemCount:     inv.Len(),
		CurrentWeight: inv.CurrentWeight(),
		MaxWeight:     inv.MaxWeight(),
		Encumbered:    inv.IsEncumbered(),
		Coins:         inv.Purse().String(),
		CampFile:      inv.CampFile(),
		Items:         datatypes.JSON(itemsJSON),
	}
	if err := svc.db.Create(snap).Error; err != nil {
		return fmt.Errorf("history: save snapshot: %w", err)
	}
	return nil
}

func (svc *Service) appendText(action string, rec equipment.Record) error {
	f, err := os.OpenFile(svc.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("history: open log: %w", err)
	}
	defer f.Close()

	if err := WriteEntry(f, action, rec); err != nil {
		return fmt.Errorf("history: write log: %w", err)
	}
	return f.Close()
}

func (svc *Service) insert(action string, rec equipment.Record) error {
	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: encode record: %w", err)
	}
	row := &model.ActionLog{
		RunID:     svc.runID,
		Action:    action,
		ItemName:  rec.Name,
		ItemIndex: rec.Index,
		Weight:    rec.Weight,
		Record:    datatypes.JSON(recJSON),
	}
	if err := svc.db.Create(row).Error; err != nil {
		return fmt.Errorf("history: insert action: %w", err)
	}
	return nil
}

// WriteEntry formats one history block.
func WriteEntry(w io.Writer, action string, rec equipment.Record) error {
	_, err := fmt.Fprintf(w, "Actie: %s\nItem: %s\n", action, rec.Name)
	return err
}
