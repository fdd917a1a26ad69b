// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"encoding/json"
	"io"

	"github.com/l3montree-dev/vulncat/dtos"
	"github.com/pkg/errors"
)

// WriteStream renders the merged, classified change sequence as a single
// JSON document without buffering the result set: the merger's fixed total
// count decides where element separators go, so items can be flushed to the
// network as they are produced.
func WriteStream(w io.Writer, merger *Merger, includeRefs bool) error {
	if _, err := io.WriteString(w, `{"data": [`); err != nil {
		return err
	}

	total := merger.TotalCount()
	var written int64

	for {
		entity, err := merger.Next()
		if err != nil {
			return errors.Wrap(err, "could not read next change")
		}
		if entity == nil {
			break
		}

		item := dtos.ChangeItemDTO{
			Collection: entity.TableName(),
			Action:     string(Classify(entity, merger.Since())),
			Document:   entity.FeedDocument(includeRefs),
		}

		data, err := json.Marshal(item)
		if err != nil {
			return errors.Wrap(err, "could not marshal change item")
		}
		if _, err := w.Write(data); err != nil {
			return err
		}

		written++
		if written != total {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}

		if flusher, ok := w.(interface{ Flush() }); ok {
			flusher.Flush()
		}
	}

	_, err := io.WriteString(w, `]}`)
	return err
}
