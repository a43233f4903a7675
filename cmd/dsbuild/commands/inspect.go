package commands

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TuSKan/go-dataset/zarr"
)

// ArrayInfo is the output of the inspect command.
type ArrayInfo struct {
	*zarr.Metadata
	Grid     []int `json:"grid"`
	Elements int   `json:"elements"`
}

// RunInspect prints the metadata of the array at args[0].
func RunInspect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	r, err := zarr.Open(cmd.Context(), args[0], zarr.WithLogger(logrus.StandardLogger()))
	if err != nil {
		return err
	}
	defer r.Close()

	meta := r.Metadata()
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(ArrayInfo{
		Metadata: meta,
		Grid:     zarr.GridShape(meta.Shape, meta.Chunks),
		Elements: meta.ElementCount(),
	})
}
