package server

import (
	"strconv"
	"strings"

	"github.com/urban-mobility-tools/bikeflow/projection"
	"github.com/urban-mobility-tools/bikeflow/traffic"
	"github.com/urban-mobility-tools/bikeflow/utils"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseFilterParam reads the slider value. Absent means "leave the current
// filter alone"; -1 is the explicit no-filter sentinel.
func parseFilterParam(s string) (value int, present bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, convErr := strconv.Atoi(s)
	if convErr != nil {
		return 0, false, &QueryError{Msg: "filter must be an integer"}
	}
	if v != traffic.NoFilter && (v < 0 || v >= utils.MinutesPerDay) {
		return 0, false, &QueryError{Msg: "filter must be -1 or a minute of day 0..1439"}
	}
	return v, true, nil
}

// parseViewportParams overlays any provided camera parameters onto the
// current viewport. present reports whether at least one parameter was set.
func parseViewportParams(params map[string]string, current projection.Viewport) (vp projection.Viewport, present bool, err error) {
	vp = current
	readFloat := func(key string, dst *float64) error {
		s, ok := params[key]
		if !ok || strings.TrimSpace(s) == "" {
			return nil
		}
		v, convErr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if convErr != nil {
			return &QueryError{Msg: key + " must be a number"}
		}
		*dst = v
		present = true
		return nil
	}
	readInt := func(key string, dst *int) error {
		s, ok := params[key]
		if !ok || strings.TrimSpace(s) == "" {
			return nil
		}
		v, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr != nil || v < 0 {
			return &QueryError{Msg: key + " must be a non-negative integer"}
		}
		*dst = v
		present = true
		return nil
	}
	if err := readFloat("centerlon", &vp.CenterLon); err != nil {
		return vp, false, err
	}
	if err := readFloat("centerlat", &vp.CenterLat); err != nil {
		return vp, false, err
	}
	if err := readFloat("zoom", &vp.Zoom); err != nil {
		return vp, false, err
	}
	if err := readInt("width", &vp.Width); err != nil {
		return vp, false, err
	}
	if err := readInt("height", &vp.Height); err != nil {
		return vp, false, err
	}
	return vp, present, nil
}

// lowercaseParams flattens url.Values-style query input into a
// case-insensitive single-value map.
func lowercaseParams(values map[string][]string) map[string]string {
	params := map[string]string{}
	for k, v := range values {
		if len(v) > 0 {
			params[strings.ToLower(k)] = v[0]
		}
	}
	return params
}
