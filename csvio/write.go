package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/powerflow"
)

// ErrHeaderContract indicates a table row whose width differs from its header.
var ErrHeaderContract = errors.New("csvio: row width differs from header")

// WriteTable writes a header-plus-rows export, refusing any row whose
// width differs from the header's.
func WriteTable(w io.Writer, t network.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("csvio: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrHeaderContract, i, len(row), len(t.Header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvio: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteRows writes a sweep result: one row per accepted demand step. The
// per-node columns are grouped, not interleaved: all resource powers, then
// all resource voltages, then consumer powers, then consumer voltages,
// each group numbered from 0. The counts are taken from the network shape
// so an empty result still produces the right header.
func WriteRows(w io.Writer, res powerflow.Result, nResources, nConsumers int) error {
	header := []string{"current", "length"}
	for i := 0; i < nResources; i++ {
		header = append(header, "power_at_resource_"+strconv.Itoa(i))
	}
	for i := 0; i < nResources; i++ {
		header = append(header, "voltage_at_resource_"+strconv.Itoa(i))
	}
	for i := 0; i < nConsumers; i++ {
		header = append(header, "power_at_consumer_"+strconv.Itoa(i))
	}
	for i := 0; i < nConsumers; i++ {
		header = append(header, "voltage_at_consumer_"+strconv.Itoa(i))
	}
	header = append(header, "total_power_consumption")

	t := network.Table{Header: header}
	for _, row := range res.Rows {
		fields := make([]string, 0, len(header))
		fields = append(fields, formatFloat(row.Current), formatFloat(row.Length))
		for _, group := range [][]float64{
			row.ResourcePower, row.ResourceVoltage,
			row.ConsumerPower, row.ConsumerVoltage,
		} {
			for _, v := range group {
				fields = append(fields, formatFloat(v))
			}
		}
		fields = append(fields, formatFloat(row.TotalPower))
		t.Rows = append(t.Rows, fields)
	}
	return WriteTable(w, t)
}
