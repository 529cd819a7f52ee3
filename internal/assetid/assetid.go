package assetid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"labelstrip/internal/services"
)

var idPattern = regexp.MustCompile(`^(\d{3})-(\d{3})$`)

// ID identifies one physical asset tag: a three-digit group and a three-digit
// sequence, rendered zero-padded as "GGG-SSS".
type ID struct {
	Group    int
	Sequence int
}

// Parse converts an asset ID string into an ID. Anything that does not match
// exactly three digits, a hyphen, and three more digits is rejected.
func Parse(value string) (ID, error) {
	trimmed := strings.TrimSpace(value)
	match := idPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return ID{}, services.Wrap(services.ErrValidation, "assetid", "parse",
			fmt.Sprintf("asset ID %q must match GGG-SSS (three digits, hyphen, three digits)", value), nil)
	}
	group, err := strconv.Atoi(match[1])
	if err != nil {
		return ID{}, services.Wrap(services.ErrValidation, "assetid", "parse", fmt.Sprintf("asset ID %q", value), err)
	}
	sequence, err := strconv.Atoi(match[2])
	if err != nil {
		return ID{}, services.Wrap(services.ErrValidation, "assetid", "parse", fmt.Sprintf("asset ID %q", value), err)
	}
	return ID{Group: group, Sequence: sequence}, nil
}

// String renders the ID in display form, e.g. "004-012".
func (id ID) String() string {
	return fmt.Sprintf("%03d-%03d", id.Group, id.Sequence)
}

// Index linearizes the ID as group*1000 + sequence. Sequential indexes model
// the physical numbering: sequence 999 is followed by the next group's 000.
func (id ID) Index() int {
	return id.Group*1000 + id.Sequence
}

// FromIndex is the inverse of Index.
func FromIndex(index int) ID {
	return ID{Group: index / 1000, Sequence: index % 1000}
}

// Range expands the inclusive range from start to end into an ordered slice of
// IDs, carrying the sequence into the group at 1000. The endpoints are parsed
// strings so callers can hand flag values straight in; end must not precede
// start.
func Range(start, end string) ([]ID, error) {
	from, err := Parse(start)
	if err != nil {
		return nil, err
	}
	to, err := Parse(end)
	if err != nil {
		return nil, err
	}
	if to.Index() < from.Index() {
		return nil, services.Wrap(services.ErrValidation, "assetid", "range",
			fmt.Sprintf("end %s precedes start %s", to, from), nil)
	}
	ids := make([]ID, 0, to.Index()-from.Index()+1)
	for i := from.Index(); i <= to.Index(); i++ {
		ids = append(ids, FromIndex(i))
	}
	return ids, nil
}
