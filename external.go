package dtd

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/lestrrat-go/dtd/encoding"
	"github.com/pkg/errors"
)

// resolveSystemID maps a system identifier to a local path. Only
// "file" URLs and plain paths can be resolved.
func resolveSystemID(baseDir, systemID string) (string, error) {
	u, err := url.Parse(systemID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse system identifier '%s'", systemID)
	}

	var path string
	switch u.Scheme {
	case "":
		path = systemID
	case "file":
		path = strings.TrimPrefix(strings.TrimPrefix(systemID, "file://"), "file:")
		if path, err = url.PathUnescape(path); err != nil {
			return "", errors.Wrapf(err, "failed to unescape '%s'", systemID)
		}
	default:
		return "", errors.Errorf("unsupported scheme '%s'", u.Scheme)
	}

	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return path, nil
}

// readExternalEntity reads and decodes the content of an external
// entity found at path
func readExternalEntity(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to stat file")
	}
	if fi.IsDir() {
		return "", errors.Errorf("'%s' is a directory", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read file")
	}

	s, err := encoding.Decode(b, "")
	if err != nil {
		return "", errors.Wrap(err, "failed to decode file")
	}
	return s, nil
}

// lookupExternalEntity checks whether the content of ent is available
// when external entity loading is enabled. External content is never
// parsed, so the outcome is only ever reported as a warning.
func (ctx *parserCtx) lookupExternalEntity(ent *Entity) {
	if !ctx.loadExternal {
		return
	}

	sys, _ := ent.SystemID()
	path, err := resolveSystemID(ctx.baseDir, sys)
	if err != nil {
		ctx.warning(WarnExternalEntity{Name: ent.name, Path: sys, Reason: "could not be resolved: " + err.Error()})
		return
	}

	content, err := readExternalEntity(path)
	if err != nil {
		ctx.warning(WarnExternalEntity{Name: ent.name, Path: path, Reason: "could not be loaded: " + err.Error()})
		return
	}

	ctx.tlog.Debug("external entity found", slog.String("name", ent.name), slog.String("path", path))
	ctx.warning(WarnExternalEntity{
		Name:   ent.name,
		Path:   path,
		Reason: fmt.Sprintf("was found (%d characters) but external entities are not parsed", len([]rune(content))),
	})
}
