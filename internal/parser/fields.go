package parser

import (
	"strconv"
	"strings"

	"github.com/dchen116/nrrd/internal/format"
)

type fieldFunc func(h *format.Header, field, desc string) error

// fields is keyed by the field identifier lower-cased with spaces removed,
// so "line skip" and "lineskip" share an entry.
var fields = map[string]fieldFunc{
	"type":             parseType,
	"dimension":        parseDimension,
	"sizes":            parseSizes,
	"endian":           parseEndian,
	"lineskip":         parseLineSkip,
	"byteskip":         parseByteSkip,
	"datafile":         parseDataFile,
	"encoding":         parseEncoding,
	"content":          parseContent,
	"spacings":         perAxisFloats(func(h *format.Header) *[]float64 { return &h.Spacings }),
	"axismins":         perAxisFloats(func(h *format.Header) *[]float64 { return &h.AxisMins }),
	"axismaxs":         perAxisFloats(func(h *format.Header) *[]float64 { return &h.AxisMaxs }),
	"thicknesses":      perAxisFloats(func(h *format.Header) *[]float64 { return &h.Thicknesses }),
	"units":            perAxisStrings(func(h *format.Header) *[]string { return &h.Units }),
	"labels":           perAxisStrings(func(h *format.Header) *[]string { return &h.Labels }),
	"kinds":            parseKinds,
	"centers":          parseCenterings,
	"centerings":       parseCenterings,
	"spaceunits":       parseSpaceUnits,
	"space":            parseSpace,
	"spacedimension":   parseSpaceDimension,
	"spacedirections":  parseSpaceDirections,
	"spaceorigin":      parseSpaceOrigin,
	"measurementframe": parseMeasurementFrame,
	"min":              scalarFloat(func(h *format.Header) **float64 { return &h.Min }),
	"max":              scalarFloat(func(h *format.Header) **float64 { return &h.Max }),
	"oldmin":           scalarFloat(func(h *format.Header) **float64 { return &h.OldMin }),
	"oldmax":           scalarFloat(func(h *format.Header) **float64 { return &h.OldMax }),
	"sampleunits":      parseSampleUnits,
}

func fieldKey(id string) string {
	return strings.ToLower(strings.Join(strings.Fields(id), ""))
}

func parseType(h *format.Header, field, desc string) error {
	t, err := format.ParseDataType(desc)
	if err != nil {
		return err
	}
	h.Type = t
	h.TypeName = desc
	return nil
}

func parseDimension(h *format.Header, field, desc string) error {
	n, err := strconv.Atoi(desc)
	if err != nil || n < 1 {
		return format.FieldErrorf(field, "bad dimension %q", desc)
	}
	if h.Dimension != 0 && h.Dimension != n {
		return format.FieldErrorf(field, "dimension redeclared as %d", n)
	}
	h.Dimension = n
	return nil
}

// needDimension guards every per-axis field.
func needDimension(h *format.Header, field string) error {
	if h.Dimension == 0 {
		return format.FieldErrorf(field, "appears before dimension")
	}
	return nil
}

func parseSizes(h *format.Header, field, desc string) error {
	if err := needDimension(h, field); err != nil {
		return err
	}
	sizes, err := ParseInts(field, desc, h.Dimension)
	if err != nil {
		return err
	}
	for _, s := range sizes {
		if s == 0 {
			return format.FieldErrorf(field, "zero axis size in %q", desc)
		}
	}
	h.Sizes = sizes
	return nil
}

func parseEndian(h *format.Header, field, desc string) error {
	e, err := format.ParseEndian(desc)
	if err != nil {
		return err
	}
	h.Endian = e
	return nil
}

func parseLineSkip(h *format.Header, field, desc string) error {
	n, err := strconv.Atoi(desc)
	if err != nil || n < 0 {
		return format.FieldErrorf(field, "bad line skip %q", desc)
	}
	h.LineSkip = n
	return nil
}

func parseByteSkip(h *format.Header, field, desc string) error {
	n, err := strconv.ParseInt(desc, 10, 64)
	if err != nil {
		return format.FieldErrorf(field, "bad byte skip %q", desc)
	}
	if n < 0 {
		n = -1
	}
	h.ByteSkip = n
	return nil
}

func parseDataFile(h *format.Header, field, desc string) error {
	if desc == "" {
		return format.FieldErrorf(field, "empty data file")
	}
	h.DataFile = desc
	return nil
}

func parseEncoding(h *format.Header, field, desc string) error {
	e, err := format.ParseEncoding(desc)
	if err != nil {
		return err
	}
	h.Encoding = e
	return nil
}

func parseContent(h *format.Header, field, desc string) error {
	h.Content = desc
	return nil
}

func perAxisFloats(dst func(h *format.Header) *[]float64) fieldFunc {
	return func(h *format.Header, field, desc string) error {
		if err := needDimension(h, field); err != nil {
			return err
		}
		v, err := ParseFloats(field, desc, h.Dimension)
		if err != nil {
			return err
		}
		*dst(h) = v
		return nil
	}
}

func perAxisStrings(dst func(h *format.Header) *[]string) fieldFunc {
	return func(h *format.Header, field, desc string) error {
		if err := needDimension(h, field); err != nil {
			return err
		}
		v, err := ParseStrings(field, desc, h.Dimension)
		if err != nil {
			return err
		}
		*dst(h) = v
		return nil
	}
}

func scalarFloat(dst func(h *format.Header) **float64) fieldFunc {
	return func(h *format.Header, field, desc string) error {
		v, err := ParseFloat(field, desc)
		if err != nil {
			return err
		}
		*dst(h) = &v
		return nil
	}
}

func parseKinds(h *format.Header, field, desc string) error {
	if err := needDimension(h, field); err != nil {
		return err
	}
	kinds, err := Split(field, desc, Whitespace, h.Dimension)
	if err != nil {
		return err
	}
	// some writers quote kinds
	for i, k := range kinds {
		kinds[i] = strings.Trim(k, `"`)
	}
	h.Kinds = kinds
	return nil
}

func parseCenterings(h *format.Header, field, desc string) error {
	if err := needDimension(h, field); err != nil {
		return err
	}
	c, err := Split(field, desc, Whitespace, h.Dimension)
	if err != nil {
		return err
	}
	h.Centerings = c
	return nil
}

// parseSpaceUnits expects one unit per spatial axis: the space-kind axes
// when kinds are known, else the space dimension, else every axis.
func parseSpaceUnits(h *format.Header, field, desc string) error {
	if err := needDimension(h, field); err != nil {
		return err
	}
	n := h.Dimension
	switch {
	case len(h.Kinds) > 0:
		n = len(h.SpaceAxes())
	case h.SpaceDimension > 0:
		n = h.SpaceDimension
	}
	if n == 0 {
		return format.FieldErrorf(field, "no space axes declared")
	}
	units, err := ParseStrings(field, desc, n)
	if err != nil {
		return err
	}
	h.SpaceUnits = units
	return nil
}

func parseSpace(h *format.Header, field, desc string) error {
	h.Space = strings.ToLower(desc)
	if h.SpaceDimension == 0 {
		h.SpaceDimension = spaceDimensionOf(h.Space)
	}
	return nil
}

func spaceDimensionOf(space string) int {
	switch space {
	case "right-anterior-superior", "ras",
		"left-anterior-superior", "las",
		"left-posterior-superior", "lps",
		"scanner-xyz", "3d-right-handed", "3d-left-handed":
		return 3
	case "right-anterior-superior-time", "rast",
		"left-anterior-superior-time", "last",
		"left-posterior-superior-time", "lpst",
		"scanner-xyz-time", "3d-right-handed-time", "3d-left-handed-time":
		return 4
	default:
		return 0
	}
}

func parseSpaceDimension(h *format.Header, field, desc string) error {
	n, err := strconv.Atoi(desc)
	if err != nil || n < 1 {
		return format.FieldErrorf(field, "bad space dimension %q", desc)
	}
	h.SpaceDimension = n
	return nil
}

func parseSpaceDirections(h *format.Header, field, desc string) error {
	if err := needDimension(h, field); err != nil {
		return err
	}
	dirs, err := ParseVectors(field, desc, h.Dimension, h.SpaceDimension)
	if err != nil {
		return err
	}
	h.SpaceDirections = dirs
	return nil
}

func parseSpaceOrigin(h *format.Header, field, desc string) error {
	v, err := ParseVector(field, desc)
	if err != nil {
		return err
	}
	if h.SpaceDimension > 0 && len(v) != h.SpaceDimension {
		return format.FieldErrorf(field, "origin %q has %d components, want %d", desc, len(v), h.SpaceDimension)
	}
	h.SpaceOrigin = v
	return nil
}

func parseMeasurementFrame(h *format.Header, field, desc string) error {
	n := h.SpaceDimension
	if n == 0 {
		return format.FieldErrorf(field, "appears before space dimension")
	}
	frame, err := ParseVectors(field, desc, n, n)
	if err != nil {
		return err
	}
	h.MeasurementFrame = frame
	return nil
}

func parseSampleUnits(h *format.Header, field, desc string) error {
	h.SampleUnits = strings.Trim(desc, `"`)
	return nil
}
