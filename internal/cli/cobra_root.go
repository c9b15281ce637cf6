package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/workspace"
)

// Opener opens the session once the configuration is final
type Opener func(ctx context.Context, cfg *config.Config) (*workspace.Session, workspace.Startup, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	opener Opener
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	app    *App
}

// NewRootCommand creates the root cobra command bound to the process terminal
func NewRootCommand(loader *config.Loader, opener Opener) *RootCommand {
	return NewRootCommandWithIO(loader, opener, os.Stdin, os.Stdout, os.Stderr)
}

// NewRootCommandWithIO creates the root cobra command with global flags. The
// configuration is loaded once the flags are parsed.
func NewRootCommandWithIO(loader *config.Loader, opener Opener, in io.Reader, out, errOut io.Writer) *RootCommand {
	if loader == nil {
		loader = config.NewLoader()
	}
	if opener == nil {
		opener = workspace.OpenFromConfig
	}

	root := &RootCommand{
		loader: loader,
		opener: opener,
		in:     in,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line task manager with categories",
		Long: `Task Manager (tm) keeps a list of tasks grouped by category.

Tasks have a description, a due date (YYYY/MM/DD), a priority and a status.
The workspace is saved between runs; an empty workspace is seeded from the
pipe-delimited import file (Tareas.txt by default).

EXAMPLES:
  tm category add Work                         # Add and select a category
  tm task add                                  # Fill in the task form
  tm task add -d "Finish report" --due 2024/12/31 -p High -s Pending
  tm list                                      # Tasks of the selected category
  tm category select Home                      # Change the selected category
  tm export                                    # Save as CSV (asks for a file name)
  tm export report.pdf                         # Printable report
  tm import Tareas.txt                         # Append tasks from a file
  tm shell                                     # Interactive session

CONFIGURATION:
  Priority: command-line flags > environment variables > config file > defaults
  Config file: ~/.tm/config.yaml (or TM_CONFIG)

    TM_WORKSPACE_DIR              Workspace directory (default: ~/.tm)
    TM_WORKSPACE_FILENAME         Workspace database (default: tm.db)
    TM_WORKSPACE_QUERY_TIMEOUT    Query timeout (default: 10s)
    TM_WORKSPACE_WRITE_TIMEOUT    Write timeout (default: 5s)
    TM_IMPORT_PATH                File loaded into an empty workspace (default: Tareas.txt)
    TM_EXPORT_DEFAULT_FORMAT      csv, pdf or pipe (default: csv)
    TM_EXPORT_DEFAULT_FILENAME    Suggested export name (default: tareas export.csv)
    TM_VALIDATION_MAX_FIELD_LENGTH  Longest accepted form field (default: 255)
    TM_APP_TIMEOUT                Per-command timeout (default: 60s)
    TM_APP_VERBOSE                Debug output on stderr (default: false)
    TM_DEBUG                      Same as TM_APP_VERBOSE`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration with the flag overrides before any command runs
			if err := root.loadConfig(); err != nil {
				return err
			}
			logging.SetVerbose(root.config.Application.Verbose)
			return nil
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments
func (r *RootCommand) ExecuteArgs(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// Close releases the session opened by a command, if any
func (r *RootCommand) Close() error {
	if r.app == nil {
		return nil
	}
	return r.app.session.Close()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Workspace configuration
	flags.String("workspace-dir", "", "Workspace directory (overrides TM_WORKSPACE_DIR)")
	flags.String("workspace-file", "", "Workspace database filename (overrides TM_WORKSPACE_FILENAME)")
	flags.Duration("query-timeout", 0, "Database query timeout (overrides TM_WORKSPACE_QUERY_TIMEOUT)")
	flags.Duration("write-timeout", 0, "Database write timeout (overrides TM_WORKSPACE_WRITE_TIMEOUT)")

	// Import/export configuration
	flags.String("import-path", "", "File loaded into an empty workspace (overrides TM_IMPORT_PATH)")
	flags.String("export-format", "", "Default export format: csv, pdf or pipe (overrides TM_EXPORT_DEFAULT_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides TM_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug output (overrides TM_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Category commands
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	var noTask bool
	categoryAddCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category and select it",
		Long: `Add a category and make it the selected one. Without a name you are asked for one.
The task form then opens for the new category; an empty description skips it.`,
		// The forms wait for user input
		RunE: r.run(2, func(app *App) Command {
			return NewCategoryAddCommand(app, !noTask)
		}),
	}
	categoryAddCmd.Flags().BoolVar(&noTask, "no-task", false, "Do not open the task form after adding")

	categoryCmd.AddCommand(
		categoryAddCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List categories (* marks the selected one)",
			Args:  cobra.NoArgs,
			RunE: r.run(1, func(app *App) Command {
				return NewCategoryListCommand(app)
			}),
		},
		&cobra.Command{
			Use:   "select <name>",
			Short: "Select the category shown by list",
			Args:  cobra.MinimumNArgs(1),
			RunE: r.run(1, func(app *App) Command {
				return NewCategorySelectCommand(app)
			}),
		},
	)

	// Task commands
	taskFlags := &TaskFlags{}
	taskAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a task. When both --description and --due are given the task is added
directly; otherwise the task form is shown, pre-filled with the given flags.
The category defaults to the selected one.`,
		Args: cobra.NoArgs,
		// The form waits for user input
		RunE: r.run(2, func(app *App) Command {
			return NewTaskAddCommand(app, taskFlags)
		}),
	}
	taskAddCmd.Flags().StringVarP(&taskFlags.Description, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskFlags.DueDate, "due", "", "Due date (YYYY/MM/DD)")
	taskAddCmd.Flags().StringVarP(&taskFlags.Priority, "priority", "p", "", "Priority")
	taskAddCmd.Flags().StringVarP(&taskFlags.Status, "status", "s", "", "Status")
	taskAddCmd.Flags().StringVarP(&taskFlags.Category, "category", "c", "", "Category (default: the selected one)")

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	taskCmd.AddCommand(taskAddCmd)

	// List command
	var listAll bool
	listCmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List the tasks of a category",
		Long: `List the tasks of the given category, or of the selected one.

Examples:
  tm list            # Selected category
  tm list Home       # Tasks in Home
  tm list --all      # Every task`,
		RunE: r.run(1, func(app *App) Command {
			return NewListCommand(app, listAll)
		}),
	}
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "List tasks of every category")

	// Export command
	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Save every task to a file",
		Long: `Save every task to a CSV file (or a PDF report, or the pipe-delimited format).
Without a path you are asked for one; the suggested name is "tareas export.csv".
The format follows --format, then the file extension, then the configured default.`,
		RunE: r.run(2, func(app *App) Command {
			return NewExportCommand(app, exportFormat)
		}),
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: csv, pdf or pipe")

	// Import command
	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Append the tasks of a pipe-delimited or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(1, func(app *App) Command {
			return NewImportCommand(app)
		}),
	}

	// Shell command
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Each command inside the shell gets its own timeout
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			return NewShellCommand(app).Execute(ctx, args)
		},
	}

	// Config command
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewConfigShowCommand(r.config, r.out).Execute(cmd.Context(), args)
		},
	})

	r.cmd.AddCommand(
		categoryCmd,
		taskCmd,
		listCmd,
		exportCmd,
		importCmd,
		shellCmd,
		configCmd,
	)
}

// run builds a RunE that opens the session and executes the handler under
// the application timeout scaled by factor
func (r *RootCommand) run(factor time.Duration, build func(*App) Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*factor)
		defer cancel()

		app, err := r.getApp(ctx)
		if err != nil {
			return err
		}
		return build(app).Execute(ctx, args)
	}
}

// getApp opens the session on first use and reports the startup import
func (r *RootCommand) getApp(ctx context.Context) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}

	session, startup, err := r.opener(ctx, r.config)
	if err != nil {
		return nil, NewErrorHandler().Handle("open workspace", err)
	}

	switch {
	case startup.Warning != nil:
		fmt.Fprintf(r.errOut, "Warning: could not load %s: %s\n", startup.ImportPath, userMessage(startup.Warning))
	case startup.Imported > 0:
		fmt.Fprintf(r.errOut, "Loaded %d tasks from %s\n", startup.Imported, startup.ImportPath)
	}

	r.app = NewApp(session, r.config, r.in, r.out)
	return r.app, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// loadConfig reads file and environment configuration, then applies the
// flags set on the command line
func (r *RootCommand) loadConfig() error {
	cfg, err := r.loader.LoadWithOverrides(overridesFromFlags(r.cmd.PersistentFlags()))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	return nil
}

// overridesFromFlags collects the global flags that were set explicitly
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("workspace-dir") {
		v, _ := flags.GetString("workspace-dir")
		overrides.WorkspaceDir = &v
	}
	if flags.Changed("workspace-file") {
		v, _ := flags.GetString("workspace-file")
		overrides.WorkspaceFilename = &v
	}
	if flags.Changed("query-timeout") {
		v, _ := flags.GetDuration("query-timeout")
		overrides.QueryTimeout = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		overrides.WriteTimeout = &v
	}
	if flags.Changed("import-path") {
		v, _ := flags.GetString("import-path")
		overrides.ImportPath = &v
	}
	if flags.Changed("export-format") {
		v, _ := flags.GetString("export-format")
		overrides.ExportDefaultFormat = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}
