package eln

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// Flatten joins nested mapping keys with "/" into flat metadata keys.
// Sequences stay leaf values so list-valued entries (authors, users) can be
// iterated by the caller.
func Flatten(doc map[string]any) mapping.Metadata {
	out := make(mapping.Metadata)
	flattenInto("", doc, out)

	return out
}

func flattenInto(prefix string, doc map[string]any, out mapping.Metadata) {
	for key, val := range doc {
		full := key
		if prefix != "" {
			full = prefix + "/" + key
		}

		if nested, ok := val.(map[string]any); ok {
			flattenInto(full, nested, out)
			continue
		}

		out[full] = val
	}
}
