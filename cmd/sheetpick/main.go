package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"sheetpick/adapters/excel"
	"sheetpick/adapters/rng"
	"sheetpick/app"
	"sheetpick/domain/record"
	"sheetpick/internal/config"
	"sheetpick/internal/errors"
	"sheetpick/internal/export"
	"sheetpick/internal/profiling"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// An interrupt means the user is done, not that something failed
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\n👋 Interrupted, goodbye")
		os.Exit(0)
	}()

	run(appConfig)
}

func run(appConfig *config.Config) {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("🚀 Spreadsheet record picker")
	fmt.Println(strings.Repeat("=", 50))

	filePath := promptLine(in, filePathPrompt(appConfig.Data.FilePath))
	if filePath == "" {
		filePath = appConfig.Data.FilePath
	}
	if filePath == "" {
		fmt.Println("❌ No file path provided")
		return
	}

	store := app.NewRecordStore()
	source := excel.NewDataReader(filePath)
	if err := store.Load(source, appConfig.Data.Sheet); err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			fmt.Printf("❌ File not found: %s\n", filePath)
		} else {
			fmt.Printf("❌ Failed to load records: %v\n", err)
		}
		return
	}

	fmt.Printf("✅ Loaded %d records\n", store.Count())
	fmt.Printf("📋 Columns: %s\n", strings.Join(store.Columns(), ", "))

	if store.Count() == 0 {
		fmt.Println("⚠️  The sheet has no data rows, nothing to sample")
		return
	}

	fmt.Printf("\n📊 First %d records:\n", min(3, store.Count()))
	fmt.Println(strings.Repeat("=", 60))
	if err := store.DisplaySample(os.Stdout, 3); err != nil {
		fmt.Printf("❌ Failed to render sample: %v\n", err)
		return
	}

	printColumnProfiles(store)

	raw := promptLine(in, fmt.Sprintf("\n🎲 How many random records do you want? (Total available: %d): ", store.Count()))
	n, err := parseSampleCount(raw)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	sampler := app.NewSampler(rng.NewStreamFactory(), appConfig.Seed)
	picks := sampler.SampleRandom(store.Snapshot(), n)
	if len(picks) == 0 {
		return
	}

	fmt.Printf("\n🎯 Selected records:\n")
	fmt.Println(strings.Repeat("=", 50))
	for i, rec := range picks {
		fmt.Printf("\n🔸 Pick #%d - ID: %d\n", i+1, rec.ID)
		fmt.Printf("   Data: %s\n", marshalLine(rec.Data))
	}

	answer := promptLine(in, "\n💾 Export the selected records to JSON? (y/n): ")
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		storage := export.NewStorage(appConfig.Export.Dir)
		path, err := storage.Store(picks, fmt.Sprintf("random_records_%d", n))
		if err != nil {
			fmt.Printf("❌ Export failed: %v\n", err)
			return
		}
		fmt.Printf("✅ Records exported to %s\n", path)
	}
}

// promptLine prints the prompt and reads one trimmed line from stdin.
// A closed stdin ends the session the same way an interrupt does.
func promptLine(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		fmt.Println("\n👋 Goodbye")
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func filePathPrompt(defaultPath string) string {
	if defaultPath != "" {
		return fmt.Sprintf("📁 Enter the spreadsheet file path [%s]: ", defaultPath)
	}
	return "📁 Enter the spreadsheet file path: "
}

func parseSampleCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("expected a whole number, got %q", raw))
	}
	return n, nil
}

func printColumnProfiles(store *app.RecordStore) {
	profiles := profiling.NewProfiler().ProfileColumns(store.Columns(), store.Snapshot())
	if len(profiles) == 0 {
		return
	}

	fmt.Printf("\n📈 COLUMN PROFILE:\n")
	for _, p := range profiles {
		fmt.Printf("• %s: %d values, %.1f%% missing\n", p.Column, p.TotalCount, p.MissingRatio*100)
		if p.Numeric != nil {
			fmt.Printf("   mean %.3f, stddev %.3f, median %.3f, range [%.3f, %.3f]\n",
				p.Numeric.Mean, p.Numeric.StdDev, p.Numeric.Median, p.Numeric.Min, p.Numeric.Max)
		}
	}
}

// marshalLine renders one record payload as single-line JSON with
// non-ASCII characters kept literal.
func marshalLine(data map[string]record.Value) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
