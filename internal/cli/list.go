package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/preset"
)

var (
	// List command flags
	listCurrent   bool
	listFavorites bool
	listSmart     bool
	listVerbose   bool
	listScores    bool
	listTime      timeValue
)

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List colour presets",
		Long: `List colour presets, optionally with additional information.

Examples:
  # List all presets
  prism list

  # List favorites with brightness and contrast
  prism list -f --info

  # Show smart-selection scores, best first
  prism list -S

  # Preview 24 hours of smart choices
  prism list -s`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	listCmd.Flags().BoolVarP(&listCurrent, "current", "c", false, "list only the current preset")
	listCmd.Flags().BoolVarP(&listFavorites, "favorites", "f", false, "list only favorite presets")
	listCmd.Flags().BoolVarP(&listSmart, "smart", "s", false, "list 24h of smart choices")
	listCmd.Flags().BoolVar(&listVerbose, "info", false, "show brightness and contrast info")
	listCmd.Flags().BoolVarP(&listScores, "scores", "S", false, "show smart-selection scores")
	listCmd.Flags().VarP(&listTime, "time", "t", "simulate the given time for --scores")
	listCmd.MarkFlagsMutuallyExclusive("current", "favorites", "smart")
	listCmd.MarkFlagsMutuallyExclusive("smart", "scores")
	return listCmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if listSmart {
		return listSmartSchedule(a)
	}

	var presets []preset.Preset
	switch {
	case listCurrent:
		name, err := a.current.Get()
		if err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("cannot determine current preset")
		}
		p, err := a.store.Get(name)
		if err != nil {
			return fmt.Errorf("recorded current preset %w", err)
		}
		presets = []preset.Preset{p}
	case listFavorites:
		presets = a.favoritePresets()
	default:
		presets = a.store.All()
	}

	if !listVerbose && !listScores {
		for _, p := range presets {
			fmt.Println(p.Name)
		}
		return nil
	}

	headers := []string{"NAME"}
	if listVerbose {
		headers = append(headers, "BRIGHTNESS", "CONTRAST")
	}
	if listScores {
		headers = append(headers, "SUN", "DISPLAY", "RANDOM", "TOTAL")
	}
	out := newTable(headers...)

	var scores map[string]preset.Score
	if listScores {
		selector := preset.NewSelector(a.cfg.Weights(), nil)
		scores = selector.Scores(presets, a.signals(listTime.Time()))
		// Best candidates first.
		sort.SliceStable(presets, func(i, j int) bool {
			return scores[presets[i].Name].Total() > scores[presets[j].Name].Total()
		})
	}

	for _, p := range presets {
		row := []string{p.Name}
		if listVerbose {
			row = append(row,
				fmt.Sprintf("%.3f", p.Brightness()),
				fmt.Sprintf("%.3f", p.Contrast()))
		}
		if listScores {
			s := scores[p.Name]
			row = append(row,
				fmt.Sprintf("%06.3f", s.Sun),
				fmt.Sprintf("%06.3f", s.Display),
				fmt.Sprintf("%06.3f", s.Random),
				fmt.Sprintf("%06.3f", s.Total()))
		}
		out.addRow(row...)
	}
	fmt.Print(out.String())
	return nil
}

// listSmartSchedule previews what smart selection would choose at each hour
// of today, ignoring repeat avoidance.
func listSmartSchedule(a *app) error {
	favorites := a.favoritePresets()
	if len(favorites) == 0 {
		return preset.ErrNoFavorites
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	selector := preset.NewSelector(a.cfg.Weights(), nil)
	for hour := 0; hour < 24; hour++ {
		at := midnight.Add(time.Duration(hour) * time.Hour)
		choice, err := selector.Smart(favorites, a.signals(at), preset.NewHistory(0))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", at.Format("15:04"), choice.Name)
	}
	return nil
}
