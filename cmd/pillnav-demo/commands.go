package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/resources"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/router"
)

// Demo flags
var (
	stylePath    string
	menuPath     string
	langCode     string
	translations []string
	logPath      string
	logLevel     string
	touchDevice  string
	fontPath     string
	iconFontPath string
	exitOnTap    bool
	bottomInset  int32
)

func init() {
	rootCmd.PersistentFlags().StringVar(&stylePath, "style", "", "Style file (TOML or YAML) with a [bottom_nav] section")
	rootCmd.PersistentFlags().StringVar(&menuPath, "menu", "", "Menu file (TOML or YAML), overrides the style's menu")
	rootCmd.PersistentFlags().StringVar(&langCode, "lang", "", "Language code for menu titles, e.g. es")
	rootCmd.PersistentFlags().StringSliceVar(&translations, "translations", nil, "go-i18n message files (TOML or JSON)")

	rootCmd.Flags().StringVar(&logPath, "log", "", "Log file path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Application log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&touchDevice, "touch", "", "evdev touchscreen device, e.g. /dev/input/event3")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "Label font (TTF)")
	rootCmd.Flags().StringVar(&iconFontPath, "icon-font", "", "Icon font (TTF) for glyph icons")
	rootCmd.Flags().BoolVar(&exitOnTap, "exit-on-tap", false, "Exit as soon as a slot is tapped")
	rootCmd.Flags().Int32Var(&bottomInset, "bottom-inset", 0, "Extra bottom inset in pixels, e.g. for a gesture bar")

	rootCmd.AddCommand(checkCmd)
}

// loadInputs reads the style and menu files named by the flags. A nil menu
// leaves the style's own menu reference to the bar.
func loadInputs() (nav.Attributes, []pillnav.MenuItem, error) {
	var attrs nav.Attributes
	if stylePath != "" {
		loaded, err := resources.LoadStyleFile(stylePath)
		if err != nil {
			return nil, nil, fmt.Errorf("load style: %w", err)
		}
		attrs = loaded
	}

	var menu []pillnav.MenuItem
	if menuPath != "" {
		loaded, err := pillnav.LoadMenu(menuPath)
		if err != nil {
			return nil, nil, err
		}
		menu = loaded
	}

	if menu == nil && (attrs == nil || attrs[nav.AttrMenu] == "") {
		menu = defaultMenu()
	}
	return attrs, menu, nil
}

func defaultMenu() []pillnav.MenuItem {
	return []pillnav.MenuItem{
		{Icon: pillnav.GlyphIcon(constants.Home), Title: "Home"},
		{Icon: pillnav.GlyphIcon(constants.Search), Title: "Search"},
		{Icon: pillnav.GlyphIcon(constants.Library), Title: "Library"},
		{Icon: pillnav.GlyphIcon(constants.Download), Title: "Downloads"},
		{Icon: pillnav.GlyphIcon(constants.Settings), Title: "Settings"},
	}
}

// tabColors tints each tab's content area.
var tabColors = []sdl.Color{
	{R: 0x26, G: 0x32, B: 0x38, A: 0xFF},
	{R: 0x1B, G: 0x3A, B: 0x4B, A: 0xFF},
	{R: 0x2E, G: 0x3B, B: 0x2F, A: 0xFF},
	{R: 0x3E, G: 0x2C, B: 0x41, A: 0xFF},
	{R: 0x40, G: 0x33, B: 0x22, A: 0xFF},
}

func runDemo(cmd *cobra.Command, args []string) error {
	if logPath != "" {
		pillnav.SetLogPath(logPath)
	}

	// Menu titles are translated while loading.
	if err := pillnav.SetLanguage(langCode, translations...); err != nil {
		return err
	}

	attrs, menu, err := loadInputs()
	if err != nil {
		return err
	}

	if err := pillnav.Init(pillnav.Options{
		WindowTitle:    "pillnav demo",
		ShowBackground: true,
		FontPath:       fontPath,
		IconFontPath:   iconFontPath,
	}); err != nil {
		return err
	}
	defer pillnav.Close()

	pillnav.SetRawLogLevel(logLevel)
	logger := pillnav.GetLogger()

	tabs := router.New()
	for i := 0; i < nav.SlotCount; i++ {
		tab := router.Tab(i)
		tabs.Register(tab, router.ContentFuncs{
			OnShow: func(any) { logger.Info("Showing tab", "tab", int(tab)) },
			OnHide: func() any { logger.Debug("Hiding tab", "tab", int(tab)); return nil },
		})
	}
	tabs.OnChange(func(from, to router.Tab) {
		logger.Debug("Tab changed", "from", int(from), "to", int(to))
	})

	result, err := pillnav.BottomNavigation(menu, pillnav.BottomNavSettings{
		Attributes:     attrs,
		ExitOnTap:      exitOnTap,
		Insets:         pillnav.Padding{Bottom: bottomInset},
		TouchDevice:    touchDevice,
		OnItemSelected: tabs.Listener(),
		OnBack: func(bar *pillnav.BottomNav) bool {
			return tabs.SelectBack(bar.SetSelected)
		},
		RenderContent: func(renderer *sdl.Renderer, area sdl.Rect, selected int) {
			c := tabColors[0]
			if selected >= 0 && selected < len(tabColors) {
				c = tabColors[selected]
			}
			renderer.SetDrawColor(c.R, c.G, c.B, c.A)
			renderer.FillRect(&area)
		},
	})
	if errors.Is(err, pillnav.ErrCancelled) {
		logger.Info("Cancelled", "tab", int(tabs.Current()))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("selected %d (%s)\n", result.SelectedIndex, result.Action)
	return nil
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve the style and menu without opening a window",
	Long: `Loads the style and menu files, resolves every option the way the bar
would, and prints the result. Useful for validating theme files on a
desktop before copying them to a device.`,
	Example: `  # Check a style and the menu it references
  pillnav-demo check --style ui/style.toml

  # Check with translated titles
  pillnav-demo check --style ui/style.yaml --lang es --translations i18n/es.toml`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := pillnav.SetLanguage(langCode, translations...); err != nil {
		return err
	}

	attrs, menu, err := loadInputs()
	if err != nil {
		return err
	}

	env, envErr := constants.LoadEnv()
	if envErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", envErr)
	}

	navEnv := nav.DefaultEnvironment()
	navEnv.Density = env.DisplayDensity
	cfg := nav.Resolve(attrs, navEnv)

	if menu == nil && cfg.Menu != "" {
		if menu, err = pillnav.LoadMenu(cfg.Menu); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "density:          %g\n", navEnv.Density)
	fmt.Fprintf(out, "stroke width:     %dpx\n", cfg.PillStrokeWidth)
	fmt.Fprintf(out, "stroke color:     %s\n", cfg.PillStrokeColor)
	fmt.Fprintf(out, "background color: %s\n", cfg.PillBackgroundColor)
	fmt.Fprintf(out, "corner radius:    %dpx\n", cfg.PillCornerRadius)
	if cfg.IconTint != nil {
		fmt.Fprintf(out, "icon tint:        %s\n", *cfg.IconTint)
	} else {
		fmt.Fprintf(out, "icon tint:        none\n")
	}
	fmt.Fprintf(out, "default selected: %d\n", cfg.DefaultSelected)

	fmt.Fprintf(out, "menu:             %d item(s)\n", len(menu))
	for i, item := range menu {
		marker := " "
		if i >= nav.SlotCount {
			marker = "x"
		}
		fmt.Fprintf(out, "  %s %d  %-12s %s\n", marker, i, item.Title, item.Icon)
	}
	return nil
}
