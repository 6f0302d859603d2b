// Package app wires configuration, the equipment loader, the inventory and
// the history sinks into one packmule run.
package app

import (
	"fmt"
	"io"

	"github.com/kasuganosora/packmule/audit"
	"github.com/kasuganosora/packmule/camp"
	"github.com/kasuganosora/packmule/cli"
	"github.com/kasuganosora/packmule/config"
	dbadapter "github.com/kasuganosora/packmule/db"
	"github.com/kasuganosora/packmule/equipment"
	"github.com/kasuganosora/packmule/inventory"
	"github.com/kasuganosora/packmule/manage"
	"github.com/kasuganosora/packmule/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds everything one invocation works on.
type App struct {
	runID   string
	cfg     *config.Config
	opts    cli.Options
	inv     *inventory.Inventory
	loader  *equipment.Loader
	history *audit.Service
	db      *gorm.DB
	logger  *zap.Logger
}

// LoadConfig reads the config file at path. On failure the defaults are
// returned together with the error so the caller can warn and carry on.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}

// New builds the inventory from cfg overridden by opts and opens the
// optional history database. Database problems disable the database sink
// and are logged; they never fail the run.
func New(runID string, cfg *config.Config, opts cli.Options, logger *zap.Logger) *App {
	a := &App{
		runID:  runID,
		cfg:    cfg,
		opts:   opts,
		inv:    inventory.New(),
		loader: equipment.NewLoader(logger),
		logger: logger,
	}

	a.inv.SetMaxWeight(cfg.Inventory.MaxWeight)
	a.inv.ApplyMoney(cfg.Inventory.Money)
	a.inv.SetCampFile(cfg.Inventory.CampFile)
	if opts.MaxWeight != nil {
		a.inv.SetMaxWeight(*opts.MaxWeight)
	}
	for _, spec := range opts.Money {
		a.inv.ApplyMoney(spec)
	}
	if opts.CampFile != nil {
		a.inv.SetCampFile(*opts.CampFile)
	}

	for _, flag := range opts.Unknown {
		logger.Warn("unknown flag ignored", zap.String("flag", flag))
	}
	for _, flag := range opts.Dropped {
		logger.Debug("flag without value dropped", zap.String("flag", flag))
	}

	a.db = a.openDB()
	a.history = audit.New(runID, cfg.History.Path, a.db, logger)
	return a
}

func (a *App) openDB() *gorm.DB {
	if err := a.cfg.Validate(); err != nil {
		a.logger.Warn("invalid configuration, history database disabled", zap.Error(err))
		return nil
	}
	db, err := dbadapter.Open(a.cfg.Database)
	if err != nil {
		a.logger.Warn("history database unavailable", zap.String("mode", a.cfg.Database.Mode), zap.Error(err))
		return nil
	}
	if db == nil {
		return nil
	}
	if err := model.AutoMigrate(db); err != nil {
		a.logger.Warn("history database migrate failed", zap.Error(err))
		_ = dbadapter.Close(db)
		return nil
	}
	a.logger.Info("history database ready", zap.String("mode", a.cfg.Database.Mode))
	return db
}

// Inventory exposes the aggregated inventory.
func (a *App) Inventory() *inventory.Inventory { return a.inv }

// LoadSources feeds every source into the inventory in order. A source that
// cannot be read is logged and skipped.
func (a *App) LoadSources() []equipment.LoadResult {
	results := make([]equipment.LoadResult, 0, len(a.opts.Sources))
	for _, src := range a.opts.Sources {
		res, err := a.loader.Load(src, a.inv)
		if err != nil {
			a.logger.Error("skipping equipment source", zap.String("source", src), zap.Error(err))
			continue
		}
		results = append(results, res)
	}
	return results
}

// Report writes the inventory report followed by the encumbrance line.
func (a *App) Report(w io.Writer) error {
	if err := a.inv.WriteReport(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, a.inv.StatusLine())
	return err
}

// Manager builds the interactive manager over the loaded inventory.
func (a *App) Manager() *manage.Manager {
	var journal manage.Journal
	if a.history.Enabled() {
		journal = a.history
	}
	var stasher manage.Stasher
	if path := a.inv.CampFile(); path != "" {
		stasher = camp.New(path)
	}
	return manage.New(a.inv, journal, stasher, a.logger)
}

// Manage runs the interactive loop on in/out.
func (a *App) Manage(in io.Reader, out io.Writer) error {
	return a.Manager().Run(in, out)
}

// Close snapshots the final inventory to the database, if any, and releases it.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.history.Snapshot(a.inv); err != nil {
		a.logger.Warn("inventory snapshot failed", zap.Error(err))
	}
	return dbadapter.Close(a.db)
}
