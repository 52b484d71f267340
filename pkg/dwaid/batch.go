package dwaid

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// BatchDecoder parses batches of raw identifier strings as they arrive from
// DWA responses. Parsing is deterministic, so a malformed entry will never
// succeed on a later attempt; instead of aborting the batch, the decoder
// skips the entry, logs it, and reports it in the aggregated error while the
// rest of the batch is still returned.
type BatchDecoder struct {
	log hclog.Logger
}

// NewBatchDecoder creates a batch decoder. A nil logger disables logging.
func NewBatchDecoder(log hclog.Logger) *BatchDecoder {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &BatchDecoder{log: log}
}

// DecodeGUIDs parses every entry of raw, in order. Malformed entries are
// skipped and collected into the returned error, one wrapped
// *GUIDParseError per entry, indexed by position in raw.
func (d *BatchDecoder) DecodeGUIDs(raw []string) ([]GUID, error) {
	var errs *multierror.Error
	guids := make([]GUID, 0, len(raw))
	for i, s := range raw {
		g, err := ParseGUID(s)
		if err != nil {
			d.log.Warn("skipping malformed GUID", "index", i, "raw", s, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		guids = append(guids, g)
	}
	return guids, errs.ErrorOrNil()
}

// DecodeURNs parses every entry of raw, in order, with the same skip and
// collect behavior as DecodeGUIDs.
func (d *BatchDecoder) DecodeURNs(raw []string) ([]URN, error) {
	var errs *multierror.Error
	urns := make([]URN, 0, len(raw))
	for i, s := range raw {
		u, err := ParseURN(s)
		if err != nil {
			d.log.Warn("skipping malformed URN", "index", i, "raw", s, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		urns = append(urns, u)
	}
	return urns, errs.ErrorOrNil()
}
