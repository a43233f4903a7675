package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "gocloud.dev/blob/fileblob"

	"github.com/TuSKan/go-dataset"
	"github.com/TuSKan/go-dataset/zarr"
)

// BuildConfig holds the parsed settings of the build command. Use
// NewBuildConfig for a config that infers the dimension count.
type BuildConfig struct {
	Name string
	// Dimension is the number of dimensions. A negative value infers it from
	// the loaded arrays; zero requests a dataset without dimensions.
	Dimension int
	Capacity  []int
	UseFloat  bool
	Errors    bool

	Values   map[int]string
	PosError map[int]string
	NegError map[int]string

	AxisName map[int]string
	AxisUnit map[int]string

	MetaInfo    []string
	MetaWarning []string
	MetaError   []string

	Labels map[int]string
	Styles map[int]string
}

// NewBuildConfig returns an empty config that infers the dimension count.
func NewBuildConfig() *BuildConfig {
	return &BuildConfig{Dimension: -1}
}

// BuildConfigFromViper reads the build.* settings. An unset build.dimension
// infers the dimension count.
func BuildConfigFromViper() (*BuildConfig, error) {
	cfg := NewBuildConfig()
	cfg.Name = viper.GetString("build.name")
	if viper.IsSet("build.dimension") {
		cfg.Dimension = viper.GetInt("build.dimension")
	}
	cfg.Capacity = viper.GetIntSlice("build.capacity")
	cfg.UseFloat = viper.GetBool("build.float")
	cfg.Errors = viper.GetBool("build.errors")
	cfg.MetaInfo = viper.GetStringSlice("build.meta_info")
	cfg.MetaWarning = viper.GetStringSlice("build.meta_warning")
	cfg.MetaError = viper.GetStringSlice("build.meta_error")

	for key, dst := range map[string]*map[int]string{
		"build.values":    &cfg.Values,
		"build.pos_error": &cfg.PosError,
		"build.neg_error": &cfg.NegError,
		"build.axis_name": &cfg.AxisName,
		"build.axis_unit": &cfg.AxisUnit,
		"build.label":     &cfg.Labels,
		"build.style":     &cfg.Styles,
	} {
		m, err := parseIndexed(viper.GetStringSlice(key))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		*dst = m
	}

	return cfg, nil
}

// Assemble loads every configured array and builds the dataset.
func Assemble(ctx context.Context, cfg *BuildConfig, logger logrus.FieldLogger) (dataset.DataSet, error) {
	b, err := dataset.NewBuilder(
		dataset.WithName(cfg.Name),
		dataset.WithLogger(logger),
		dataset.WithDimension(cfg.Dimension),
		dataset.WithInitialCapacity(cfg.Capacity...),
		dataset.WithUseFloat(cfg.UseFloat),
		dataset.WithEnableErrors(cfg.Errors),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create builder: %w", err)
	}

	for _, src := range []struct {
		urls map[int]string
		role zarr.Role
	}{
		{cfg.Values, zarr.RoleValues},
		{cfg.PosError, zarr.RolePosError},
		{cfg.NegError, zarr.RoleNegError},
	} {
		for _, dim := range slices.Sorted(maps.Keys(src.urls)) {
			url := src.urls[dim]
			logger.WithFields(logrus.Fields{
				"dim":  dim,
				"role": src.role.String(),
				"url":  url,
			}).Info("loading array")
			if err := zarr.Load(ctx, b, url, dim, src.role, zarr.WithLogger(logger)); err != nil {
				return nil, fmt.Errorf("failed to load %s of dimension %d: %w", src.role, dim, err)
			}
		}
	}

	for dim, name := range cfg.AxisName {
		if err := b.SetAxisName(dim, name); err != nil {
			return nil, err
		}
	}
	for dim, unit := range cfg.AxisUnit {
		if err := b.SetAxisUnit(dim, unit); err != nil {
			return nil, err
		}
	}

	b.SetMetaInfoList(cfg.MetaInfo...).
		SetMetaWarningList(cfg.MetaWarning...).
		SetMetaErrorList(cfg.MetaError...).
		SetDataLabelMap(cfg.Labels).
		SetDataStyleMap(cfg.Styles)

	ds, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}
	return ds, nil
}

// RunBuild executes the build command.
func RunBuild(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	cfg, err := BuildConfigFromViper()
	if err != nil {
		return err
	}

	ds, err := Assemble(cmd.Context(), cfg, logrus.StandardLogger())
	if err != nil {
		return err
	}

	summary := dataset.Summarize(ds)
	logrus.WithFields(logrus.Fields{
		"name":        summary.Name,
		"kind":        summary.Kind,
		"fingerprint": summary.Fingerprint,
	}).Info("dataset assembled")

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
