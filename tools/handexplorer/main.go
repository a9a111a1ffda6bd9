// Command handexplorer is a non-networked, file-free analysis tool:
// given a hand description on the command line or in a config file, it
// prints shanten, useful tiles, waiting tiles, and (when a tile was
// drawn) the full discard table for every enabled shape. It never opens
// a socket and never persists anything.
package main

import (
	"fmt"
	"os"
	"strings"

	"shanten/analysis"
	"shanten/common/config"
	"shanten/common/log"
	"shanten/engines/mahjong"

	"github.com/spf13/cobra"
)

var (
	configFile string
	handFlag   string
	drawnFlag  string
	shapesFlag string
	discard    bool
)

var rootCmd = &cobra.Command{
	Use:   "handexplorer",
	Short: "explore mahjong shanten, useful tiles, and discard choices",
	Long:  `handexplorer loads a concealed hand and prints its shanten, useful tiles, and discard analysis across the five recognized winning shapes.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "optional YAML config file (hand/drawn/shapes/discard)")
	rootCmd.Flags().StringVar(&handFlag, "hand", "", "comma-separated concealed tiles, e.g. 1m,1m,1m,2m,3m,4m,5m,6m,7m,8m,9m,9m,9m")
	rootCmd.Flags().StringVar(&drawnFlag, "drawn", "", "the tile just drawn, e.g. 5m (enables discard enumeration)")
	rootCmd.Flags().StringVar(&shapesFlag, "shapes", "all", "comma-separated shapes to evaluate: basic,sevenpairs,thirteenorphans,knitted,honors,all")
	rootCmd.Flags().BoolVar(&discard, "discard", false, "force discard enumeration even without --drawn (13-tile hand)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.Load(configFile); err != nil && configFile != "" {
		return fmt.Errorf("load config: %w", err)
	}
	log.Init("handexplorer", config.Conf.Log.Level)

	hand := handFlag
	if hand == "" {
		hand = config.Conf.Hand
	}
	drawn := drawnFlag
	if drawn == "" {
		drawn = config.Conf.Drawn
	}
	shapes := shapesFlag
	if len(config.Conf.Shapes) > 0 {
		shapes = strings.Join(config.Conf.Shapes, ",")
	}
	wantDiscard := discard || config.Conf.Discard

	concealed, err := parseTiles(hand)
	if err != nil {
		return fmt.Errorf("parse --hand: %w", err)
	}
	if len(concealed) == 0 {
		return fmt.Errorf("no hand supplied: pass --hand or a config file's hand field")
	}

	flags := parseShapeFlags(shapes)

	an, err := analysis.NewAnalyzer(analysis.AnalyzerConfig{})
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}
	defer an.Close()

	printShanten(an, concealed, flags)

	if drawn != "" || wantDiscard {
		var drawnTile mahjong.Tile
		if drawn != "" {
			drawnTile, err = parseTile(drawn)
			if err != nil {
				return fmt.Errorf("parse --drawn: %w", err)
			}
		}
		printDiscardTable(concealed, drawnTile, flags)
	}

	return nil
}

func parseShapeFlags(s string) mahjong.ShapeFlags {
	var flags mahjong.ShapeFlags
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "basic":
			flags |= mahjong.ShapeBasic
		case "sevenpairs", "seven_pairs":
			flags |= mahjong.ShapeSevenPairs
		case "thirteenorphans", "thirteen_orphans":
			flags |= mahjong.ShapeThirteenOrphans
		case "knitted", "knittedstraight", "knitted_straight":
			flags |= mahjong.ShapeKnittedStraight
		case "honors", "honorsandknitted", "honors_and_knitted":
			flags |= mahjong.ShapeHonorsAndKnitted
		case "all", "":
			flags |= mahjong.ShapeAll
		}
	}
	return flags
}

func printShanten(an *analysis.Analyzer, concealed []mahjong.Tile, flags mahjong.ShapeFlags) {
	log.Info("hand", "tiles", formatTiles(concealed), "count", len(concealed))

	if flags&mahjong.ShapeBasic != 0 {
		s, useful := an.BasicShanten(concealed)
		log.Info("basic", "shanten", s, "useful", formatTiles(useful.Tiles()))
	}
	if flags&mahjong.ShapeSevenPairs != 0 {
		s, useful := an.SevenPairsShanten(concealed)
		log.Info("seven pairs", "shanten", s, "useful", formatTiles(useful.Tiles()))
	}
	if flags&mahjong.ShapeThirteenOrphans != 0 {
		s, useful := an.ThirteenOrphansShanten(concealed)
		log.Info("thirteen orphans", "shanten", s, "useful", formatTiles(useful.Tiles()))
	}
	if flags&mahjong.ShapeKnittedStraight != 0 {
		s, useful := an.KnittedStraightShanten(concealed)
		log.Info("knitted straight", "shanten", s, "useful", formatTiles(useful.Tiles()))
	}
	if flags&mahjong.ShapeHonorsAndKnitted != 0 {
		s, useful := an.HonorsAndKnittedShanten(concealed)
		log.Info("honors and knitted", "shanten", s, "useful", formatTiles(useful.Tiles()))
	}
}

func printDiscardTable(concealed []mahjong.Tile, drawnTile mahjong.Tile, flags mahjong.ShapeFlags) {
	log.Info("discard analysis")
	mahjong.EnumDiscard(concealed, drawnTile, flags, func(r mahjong.DiscardResult) bool {
		log.Info("discard",
			"tile", formatTile(r.Discarded),
			"shape", r.Shape,
			"shanten", r.Shanten,
			"useful", formatTiles(r.Useful.Tiles()))
		return true
	})
}
