package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mspro-labs/cupnote/internal/db"
	"mspro-labs/cupnote/internal/labelparser"
	"mspro-labs/cupnote/internal/models"
)

var (
	parseBlocksFile string
	parseExplain    bool
	parseSave       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse recognized label text",
	Long: `Parses text already recognized from a label. Reads a text file (or stdin when
no file is given), or a JSON/YAML list of positioned blocks with --blocks.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runParse(cmd.OutOrStdout(), args)
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseBlocksFile, "blocks", "", "JSON or YAML file of {text, verticalPosition} blocks")
	parseCmd.Flags().BoolVar(&parseExplain, "explain", false, "print corrected lines and field assignments")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "store the result in the journal")
	rootCmd.AddCommand(parseCmd)
}

func runParse(out io.Writer, args []string) {
	appCfg, fileCfg := loadConfig()
	svc, closeSvc, err := newService(context.Background(), fileCfg, false)
	if err != nil {
		log.Fatalf("Parser error: %v", err)
	}
	defer closeSvc()

	var (
		lines  []string
		source string
	)
	if parseBlocksFile != "" {
		blocks, err := readBlocks(parseBlocksFile)
		if err != nil {
			log.Fatalf("Failed to read blocks: %v", err)
		}
		lines, source = labelparser.OrderLines(blocks), parseBlocksFile
	} else {
		text, src, err := readText(args)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		lines, source = labelparser.SplitLines(text), src
	}

	analysis := svc.Parser().Analyze(lines)
	if parseExplain {
		printAnalysis(out, analysis)
	}
	info := svc.Validate(analysis.Info)
	printInfo(out, info)

	if parseSave {
		saveScans(appCfg.DBPath, []models.Scan{{Source: source, RawText: strings.Join(lines, "\n"), Info: info}})
	}
}

// readBlocks accepts JSON as well as YAML, since JSON is valid YAML.
func readBlocks(path string) ([]labelparser.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var blocks []labelparser.Block
	if err := yaml.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return blocks, nil
}

func readText(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return string(data), args[0], err
}

func printAnalysis(out io.Writer, a labelparser.Analysis) {
	fmt.Fprintln(out, "Lines:")
	for i, l := range a.Lines {
		fmt.Fprintf(out, "  %2d  %s\n", i, l)
	}
	fmt.Fprintln(out, "Assignments:")
	for _, as := range a.Assignments {
		fmt.Fprintf(out, "  %-12s %-9s line %-2d %q\n", as.Field, as.Source, as.Line, as.Value)
	}
	fmt.Fprintln(out)
}

func printInfo(out io.Writer, info labelparser.ParsedCoffeeInfo) {
	if info.IsEmpty() {
		fmt.Fprintln(out, "No label fields found.")
		return
	}
	for _, f := range labelparser.Fields {
		if v := info.Get(f); v != "" {
			fmt.Fprintf(out, "%-13s %s\n", f+":", v)
		}
	}
}

func saveScans(dbPath string, scans []models.Scan) {
	database, err := db.Connect(dbPath)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer database.Close()

	count, err := db.SaveScans(database, scans)
	if err != nil {
		log.Fatalf("Failed to save data: %v", err)
	}
	log.Printf("SUCCESS: Upserted %d records.", count)
}
