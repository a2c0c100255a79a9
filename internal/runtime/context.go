// Package runtime provides application runtime context for Habitta.
package runtime

import (
	"context"
	"os"

	"github.com/habitta-app/habitta/internal/backup"
	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/snapshot"
	"github.com/habitta-app/habitta/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Store     *storage.Store
	Formatter *output.Formatter

	// Repositories
	HabitRepo       *storage.HabitRepo
	TodoRepo        *storage.TodoRepo
	TaskFolderRepo  *storage.FolderRepo
	HabitFolderRepo *storage.FolderRepo
	UserRepo        *storage.UserRepo
	SettingsRepo    *storage.SettingsRepo

	// Services
	Snapshots *snapshot.Service

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("HABITTA_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewStore(db)

	// Create repositories
	habitRepo := storage.NewHabitRepo(store)
	todoRepo := storage.NewTodoRepo(store)
	taskFolderRepo := storage.NewTaskFolderRepo(store, todoRepo)
	habitFolderRepo := storage.NewHabitFolderRepo(store, habitRepo)
	userRepo := storage.NewUserRepo(store)
	settingsRepo := storage.NewSettingsRepo(store)

	snapshots := snapshot.NewService(habitRepo, todoRepo, taskFolderRepo, habitFolderRepo, userRepo)

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:              db,
		Store:           store,
		Formatter:       formatter,
		HabitRepo:       habitRepo,
		TodoRepo:        todoRepo,
		TaskFolderRepo:  taskFolderRepo,
		HabitFolderRepo: habitFolderRepo,
		UserRepo:        userRepo,
		SettingsRepo:    settingsRepo,
		Snapshots:       snapshots,
		Debug:           opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// BackupManager builds a backup manager over the named transport.
func (c *Context) BackupManager(ctx context.Context, transportName string) (*backup.Manager, error) {
	var transport backup.Transport
	switch transportName {
	case "", "mock":
		transport = backup.NewMock(c.Store)
	case "s3":
		cfg, err := backup.S3ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		transport, err = backup.NewS3(ctx, cfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewUserErrorWithField("transport", transportName,
			"Unknown backup transport",
			"Use 'mock' or 's3'")
	}
	return backup.NewManager(transport, c.Snapshots, c.SettingsRepo), nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
