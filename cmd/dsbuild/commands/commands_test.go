package commands

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/TuSKan/go-dataset"
	"github.com/TuSKan/go-dataset/zarr"
)

func writeArray(t *testing.T, dtype string, values ...float64) string {
	t.Helper()
	dir := t.TempDir()

	meta, err := json.Marshal(zarr.Metadata{
		ZarrFormat: 2,
		Shape:      []int{len(values)},
		Chunks:     []int{len(values)},
		DType:      dtype,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, zarr.MetadataKey), meta, 0644))

	var chunk []byte
	for _, v := range values {
		switch dtype {
		case "<f4":
			chunk = binary.LittleEndian.AppendUint32(chunk, math.Float32bits(float32(v)))
		default:
			chunk = binary.LittleEndian.AppendUint64(chunk, math.Float64bits(v))
		}
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0"), chunk, 0644))
	return "file://" + dir
}

func TestParseIndexed(t *testing.T) {
	m, err := parseIndexed([]string{"0=file:///x", " 2 =a=b", "0=file:///y"})
	require.NoError(t, err)
	require.Equal(t, map[int]string{0: "file:///y", 2: "a=b"}, m)

	m, err = parseIndexed(nil)
	require.NoError(t, err)
	require.Empty(t, m)

	m, err = parseIndexed([]string{"010=a", "00=b", "0007=c"})
	require.NoError(t, err)
	require.Equal(t, map[int]string{10: "a", 0: "b", 7: "c"}, m)

	for _, bad := range []string{"novalue", "x=1", "-1=a", "0x10=a", "=a"} {
		_, err := parseIndexed([]string{bad})
		require.Error(t, err, bad)
	}
}

func TestAssemble(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := NewBuildConfig()
	cfg.Name = "beam"
	cfg.Values = map[int]string{
		dataset.DimX: writeArray(t, "<f8", 0, 1, 2),
		dataset.DimY: writeArray(t, "<f4", 5, 6, 7),
	}
	cfg.PosError = map[int]string{dataset.DimY: writeArray(t, "<f8", 0.5, 0.5, 0.5)}
	cfg.AxisName = map[int]string{dataset.DimX: "time"}
	cfg.AxisUnit = map[int]string{dataset.DimY: "mA"}
	cfg.MetaWarning = []string{"calibration pending"}
	cfg.Labels = map[int]string{1: "peak"}

	ds, err := Assemble(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.Equal(t, "beam", ds.Name())
	require.Equal(t, 2, ds.Dimension())
	require.Equal(t, dataset.KindDoubleError, ds.Kind())
	require.Equal(t, []float64{5, 6, 7}, ds.Values(dataset.DimY))
	require.Equal(t, []float64{0.5, 0.5, 0.5}, ds.(dataset.ErrorDataSet).ErrorsNegative(dataset.DimY))
	require.Equal(t, "time", ds.AxisDescription(dataset.DimX).Name)
	require.Equal(t, "mA", ds.AxisDescription(dataset.DimY).Unit)
	require.Equal(t, []string{"calibration pending"}, ds.WarningList())
	require.Equal(t, "peak", ds.DataLabel(1))

	require.Equal(t, "dataset built", hook.LastEntry().Message)

	t.Run("shape errors surface", func(t *testing.T) {
		cfg := &BuildConfig{
			Dimension: -1,
			UseFloat:  true,
			Values:    map[int]string{dataset.DimY: writeArray(t, "<f4", 1)},
			PosError:  map[int]string{dataset.DimY: writeArray(t, "<f4", 1)},
		}
		_, err := Assemble(context.Background(), cfg, logger)
		require.ErrorIs(t, err, dataset.ErrShapeUnsupported)
	})

	t.Run("explicit zero dimensions", func(t *testing.T) {
		cfg := &BuildConfig{Values: map[int]string{dataset.DimY: writeArray(t, "<f8", 1)}}
		_, err := Assemble(context.Background(), cfg, logger)
		require.ErrorIs(t, err, dataset.ErrCapacityConflict)
	})

	t.Run("missing array", func(t *testing.T) {
		cfg := NewBuildConfig()
		cfg.Values = map[int]string{0: "file://" + t.TempDir()}
		_, err := Assemble(context.Background(), cfg, logger)
		require.Error(t, err)
	})
}

func TestBuildConfigFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := BuildConfigFromViper()
	require.NoError(t, err)
	require.Equal(t, -1, cfg.Dimension)
	require.Empty(t, cfg.Values)

	viper.Set("build.dimension", 3)
	viper.Set("build.values", []string{"02=file:///y"})
	cfg, err = BuildConfigFromViper()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Dimension)
	require.Equal(t, map[int]string{2: "file:///y"}, cfg.Values)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunBuild(t *testing.T) {
	out, err := runCommand(t, "build",
		"--log-level", "error",
		"--name", "scan",
		"--values", "1="+writeArray(t, "<f8", 3, 4),
		"--axis-unit", "1=V",
		"--meta-info", "first,second",
	)
	require.NoError(t, err)

	var s dataset.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, "scan", s.Name)
	require.Equal(t, "Double", s.Kind)
	require.Equal(t, []int{2, 2}, s.DataCount)
	require.Equal(t, "V", s.Axes[1].Unit)
	require.Equal(t, []string{"first", "second"}, s.Info)
	require.NotEmpty(t, s.Fingerprint)
}

func TestRunBuild_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "dsbuild.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
log_level: error
build:
  name: from-config
  float: true
  values:
    - "1=`+writeArray(t, "<f4", 1, 2, 3)+`"
`), 0644))

	out, err := runCommand(t, "build", "--config", cfgPath)
	require.NoError(t, err)

	var s dataset.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, "from-config", s.Name)
	require.Equal(t, "Float", s.Kind)
	require.Equal(t, []int{3, 3}, s.DataCount)
}

func TestRunBuild_Errors(t *testing.T) {
	_, err := runCommand(t, "build", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")

	_, err = runCommand(t, "build", "--log-level", "error", "--label", "x=peak")
	require.Error(t, err)

	_, err = runCommand(t, "build", "--log-level", "error", "--dimension", "1", "--values", "1="+writeArray(t, "<f8", 1))
	require.ErrorIs(t, err, dataset.ErrCapacityConflict)
}

func TestRunInspect(t *testing.T) {
	url := writeArray(t, "<f8", 1, 2, 3)
	out, err := runCommand(t, "inspect", "--log-level", "error", url)
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, "<f8", info["dtype"])
	require.Equal(t, []any{3.0}, info["shape"])
	require.Equal(t, []any{1.0}, info["grid"])
	require.Equal(t, 3.0, info["elements"])

	_, err = runCommand(t, "inspect")
	require.Error(t, err)
}
