package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"speciesfilter/internal/catalog"
	"speciesfilter/internal/config"
	"speciesfilter/internal/debug"
	"speciesfilter/internal/navigate"
	"speciesfilter/internal/species"
	"speciesfilter/internal/ui"
	"speciesfilter/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 5 * time.Second

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	defaults := config.Current()

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	speciesFlag := flag.String("species", defaults.SpeciesSource, "Species list: JSON array file or SQLite database")
	locationFlag := flag.String("location", defaults.Location, "Page the filter_species parameter is appended to")
	titleFlag := flag.String("title", defaults.Title, "Placeholder shown in the idle species field")
	maxVisibleFlag := flag.Int("max-visible", defaults.MaxVisible, "Maximum rows in the species menu")
	clipboardFlag := flag.Bool("clipboard", defaults.Clipboard, "Copy the chosen URL to the clipboard")
	themeFlag := flag.String("theme", defaults.Theme, "Colour theme ("+strings.Join(theme.Available(), ", ")+")")
	debugFlag := flag.Bool("debug", defaults.Debug, "Write a debug log to ~/.speciesfilter/debug.log")
	matchFlag := flag.String("match", "", "Print the ranked matches for a query and exit")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		species:    speciesFlag,
		location:   locationFlag,
		title:      titleFlag,
		maxVisible: maxVisibleFlag,
		clipboard:  clipboardFlag,
		theme:      themeFlag,
		debug:      debugFlag,
	}, visited)

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	candidates, err := loadCandidates(runtime.species)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	debug.Logf("main: loaded %d species from %s", len(candidates), runtime.species)

	if _, ok := visited["match"]; ok {
		printMatches(os.Stdout, candidates, *matchFlag)
		return
	}

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", runtime.theme, theme.CurrentName())
	}

	nav := navigate.New(navigate.WithClipboard(runtime.clipboard))
	appCfg := ui.Config{
		Candidates:   candidates,
		Location:     runtime.location,
		Title:        runtime.title,
		MaxVisible:   runtime.maxVisible,
		Suggestions:  config.Current().Suggestions,
		Navigator:    nav,
		PersistTheme: config.SaveTheme,
		Version:      Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printExitSummary(os.Stdout, nav)
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

func loadCandidates(path string) ([]string, error) {
	src, err := catalog.Open(path)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	return src.Load(ctx)
}

// printMatches writes one ranked match per line.
func printMatches(w io.Writer, candidates []string, query string) {
	for _, m := range species.Match(candidates, query) {
		fmt.Fprintln(w, m)
	}
}

type runtimeFlags struct {
	species    *string
	location   *string
	title      *string
	maxVisible *int
	clipboard  *bool
	theme      *string
	debug      *bool
}

type runtimeOptions struct {
	species    string
	location   string
	title      string
	maxVisible int
	clipboard  bool
	theme      string
	debug      bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	opts := config.Current()
	rt := runtimeOptions{
		species:    opts.SpeciesSource,
		location:   opts.Location,
		title:      opts.Title,
		maxVisible: opts.MaxVisible,
		clipboard:  opts.Clipboard,
		theme:      opts.Theme,
		debug:      opts.Debug,
	}

	if flagWasExplicitlySet("species", visited) {
		rt.species = strings.TrimSpace(*flags.species)
	}
	if flagWasExplicitlySet("location", visited) {
		rt.location = *flags.location
	}
	if flagWasExplicitlySet("title", visited) {
		rt.title = *flags.title
	}
	if flagWasExplicitlySet("max-visible", visited) && *flags.maxVisible > 0 {
		rt.maxVisible = *flags.maxVisible
	}
	if flagWasExplicitlySet("clipboard", visited) {
		rt.clipboard = *flags.clipboard
	}
	if flagWasExplicitlySet("theme", visited) {
		rt.theme = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("debug", visited) {
		rt.debug = *flags.debug
	}
	return rt
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
