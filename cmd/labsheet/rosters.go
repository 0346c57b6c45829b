package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/labsheet"
)

var (
	rostersCheckpoints []string
	rostersOutput      string
	rostersSeed        int64
	rostersInplace     bool
)

var rostersCmd = &cobra.Command{
	Use:   "rosters LAB DATA",
	Short: "Generate roster sheets for every section in a Canvas export",
	Long: `Generate one signature-sheet page per section from the Canvas
exported CSV at DATA, collected into a single PDF, along with a summary
attendance workbook. LAB is the lab number printed on each sheet.

Checkpoint labels come from --checkpoints, else from the checkpoints
table of the configuration file (keys matched on their trailing integer),
else a default of 1 through 4.`,
	Args: cobra.ExactArgs(2),
	RunE: runRosters,
}

func init() {
	rostersCmd.Flags().StringSliceVar(&rostersCheckpoints, "checkpoints", nil,
		"checkpoint labels for this lab, comma separated")
	rostersCmd.Flags().StringVarP(&rostersOutput, "output", "o", "",
		"output directory (default from configuration, else the working directory)")
	rostersCmd.Flags().Int64Var(&rostersSeed, "seed", 0,
		"random seed for reproducible group assignment")
	rostersCmd.Flags().BoolVar(&rostersInplace, "inplace", false,
		"overwrite existing output files instead of renaming")
}

func runRosters(cmd *cobra.Command, args []string) error {
	lab, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("LAB must be a number, got %q", args[0])
	}
	data := args[1]

	config := loadConfig()

	checkpoints := rostersCheckpoints
	if checkpoints == nil {
		checkpoints = configCheckpoints(config, lab)
	}
	if checkpoints == nil {
		fmt.Fprintln(os.Stderr, "Warning: no checkpoints provided. Use default.")
		checkpoints = labsheet.DefaultCheckpoints
	}

	outDir := rostersOutput
	if outDir == "" {
		if parent := config.GetString("paths.rosters"); parent != "" {
			outDir = filepath.Join(parent, fmt.Sprintf("Lab %d Blank Rosters", lab))
		} else {
			outDir = "."
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	gen := labsheet.FromCSV(data).Lab(lab).Checkpoints(checkpoints...)
	if cmd.Flags().Changed("seed") {
		gen = gen.Seed(rostersSeed)
	}

	warnings, err := writeOutput(outDir, fmt.Sprintf("Lab %d Rosters.pdf", lab), gen.WritePDF)
	if err != nil {
		return err
	}
	if _, err := writeOutput(outDir, fmt.Sprintf("Lab %d Summary Attendance.xlsx", lab), gen.WriteAttendance); err != nil {
		return err
	}

	if len(warnings) > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d roster row(s):\n%s\n",
			len(warnings), labsheet.FormatWarnings(warnings))
	}
	return nil
}

// writeOutput writes one output file through the given terminal
// operation, renaming on name conflicts unless --inplace is set.
func writeOutput(dir, name string, write func(w io.Writer) ([]labsheet.Warning, error)) ([]labsheet.Warning, error) {
	path := filepath.Join(dir, name)
	if !rostersInplace {
		path = uniquePath(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	warnings, err := write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return warnings, err
	}
	fmt.Println("Wrote", path)
	return warnings, nil
}

// uniquePath appends a counter to the file name until it no longer
// collides with an existing file.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	prefix := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		alt := fmt.Sprintf("%s(%d)%s", prefix, i, ext)
		if _, err := os.Stat(alt); os.IsNotExist(err) {
			return alt
		}
	}
}
