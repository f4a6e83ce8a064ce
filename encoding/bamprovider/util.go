package bamprovider

import (
	"fmt"

	"github.com/grailbio/hts/sam"
)

// RefName returns the name of the reference with the given ID in h. It fails
// if the ID is out of range (including -1, the ID of unmapped reads) or if
// the reference has an empty name.
func RefName(h *sam.Header, refID int) (string, error) {
	refs := h.Refs()
	if refID < 0 || refID >= len(refs) {
		return "", fmt.Errorf("reference ID %d not found in header (%d references)", refID, len(refs))
	}
	name := refs[refID].Name()
	if name == "" {
		return "", fmt.Errorf("reference ID %d has no name", refID)
	}
	return name, nil
}
