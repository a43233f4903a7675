package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand assembles the dsbuild command tree and binds its flags to
// viper keys.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dsbuild",
		Short: "Assemble typed datasets from Zarr arrays",
		Long: `dsbuild reads Zarr V2 arrays from blob storage, assigns them to dataset
dimensions as values or errors and prints a summary of the assembled dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Use JSON log format")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a dataset and print its summary",
		Long: `Build a dataset from Zarr arrays. Arrays are assigned with dim=url entries,
for example --values 0=file:///data/x.zarr --values 1=s3://bucket/y.zarr.`,
		Args: cobra.NoArgs,
		RunE: RunBuild,
	}

	buildCmd.Flags().StringSlice("values", nil, "Values of a dimension (dim=url)")
	buildCmd.Flags().StringSlice("pos-error", nil, "Positive errors of a dimension (dim=url)")
	buildCmd.Flags().StringSlice("neg-error", nil, "Negative errors of a dimension (dim=url)")
	buildCmd.Flags().Int("dimension", -1, "Number of dimensions (negative = infer)")
	buildCmd.Flags().IntSlice("capacity", nil, "Elements per dimension, the last value covers higher dimensions")
	buildCmd.Flags().Bool("float", false, "Store values as float32")
	buildCmd.Flags().Bool("errors", false, "Carry errors even without error arrays")
	buildCmd.Flags().String("name", "", "Dataset name (default derived from the current time)")
	buildCmd.Flags().StringSlice("axis-name", nil, "Axis name of a dimension (dim=name)")
	buildCmd.Flags().StringSlice("axis-unit", nil, "Axis unit of a dimension (dim=unit)")
	buildCmd.Flags().StringSlice("meta-info", nil, "Info messages")
	buildCmd.Flags().StringSlice("meta-warning", nil, "Warning messages")
	buildCmd.Flags().StringSlice("meta-error", nil, "Error messages")
	buildCmd.Flags().StringSlice("label", nil, "Data point label (index=text)")
	buildCmd.Flags().StringSlice("style", nil, "Data point style (index=text)")

	for key, flag := range map[string]string{
		"build.values":       "values",
		"build.pos_error":    "pos-error",
		"build.neg_error":    "neg-error",
		"build.dimension":    "dimension",
		"build.capacity":     "capacity",
		"build.float":        "float",
		"build.errors":       "errors",
		"build.name":         "name",
		"build.axis_name":    "axis-name",
		"build.axis_unit":    "axis-unit",
		"build.meta_info":    "meta-info",
		"build.meta_warning": "meta-warning",
		"build.meta_error":   "meta-error",
		"build.label":        "label",
		"build.style":        "style",
	} {
		viper.BindPFlag(key, buildCmd.Flags().Lookup(flag))
	}
	rootCmd.AddCommand(buildCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect <url>",
		Short: "Print the metadata of a Zarr array",
		Args:  cobra.ExactArgs(1),
		RunE:  RunInspect,
	})

	return rootCmd
}
