package score

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// addMetricFlags registers one float flag per metric plus --notes
func addMetricFlags(cmd *cobra.Command) {
	for _, metric := range model.AllMetrics {
		cmd.Flags().Float64(string(metric), 0, fmt.Sprintf("%s score between 0 and 1", metric))
	}
	cmd.Flags().String("notes", "", "Free-form reviewer notes")
}

// metricsFromFlags returns only the metrics explicitly set on the command line
func metricsFromFlags(flags *pflag.FlagSet) (model.Metrics, *string, error) {
	var metrics model.Metrics
	for _, metric := range model.AllMetrics {
		if !flags.Changed(string(metric)) {
			continue
		}
		v, err := flags.GetFloat64(string(metric))
		if err != nil {
			return metrics, nil, err
		}
		metrics.Set(metric, model.Float(v))
	}

	var notes *string
	if flags.Changed("notes") {
		n, _ := flags.GetString("notes")
		notes = &n
	}
	return metrics, notes, nil
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %s", what, arg)
	}
	return id, nil
}
