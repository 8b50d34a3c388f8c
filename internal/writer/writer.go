// Package writer serializes a normalized response into its TOML document and persists it.
package writer

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/ubuntu/decorate"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"github.com/ubuntu/sunrise-sunset/internal/fileutils"
	"github.com/ubuntu/sunrise-sunset/internal/models"
)

// Marshal encodes resp as a TOML document, a top-level status key followed by the [results] table.
// Absent time fields are not emitted.
func Marshal(resp models.Response) (data []byte, err error) {
	defer decorate.OnError(&err, "could not marshal response")

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(resp); err != nil {
		return nil, fmt.Errorf("could not encode response: %v", err)
	}

	return buf.Bytes(), nil
}

// Write marshals resp and writes it to path, replacing any existing file.
// The previous content stays in place if anything fails.
func Write(path string, resp models.Response) (err error) {
	defer decorate.OnError(&err, "could not write response to %s", path)

	data, err := Marshal(resp)
	if err != nil {
		return err
	}

	if err := fileutils.AtomicWrite(path, data, constants.OutputFileMode); err != nil {
		return err
	}
	slog.Debug("Wrote response", "file", path, "bytes", len(data))

	return nil
}
