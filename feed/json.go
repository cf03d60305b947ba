package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// rawStation accepts either of the two station field conventions seen in the
// wild: GBFS-style lower-case names or legacy capitalized export names.
type rawStation struct {
	ShortName string          `json:"short_name"`
	Number    string          `json:"Number"`
	Name      string          `json:"name"`
	AltName   string          `json:"NAME"`
	Lon       json.RawMessage `json:"lon"`
	Long      json.RawMessage `json:"Long"`
	Lat       json.RawMessage `json:"lat"`
	AltLat    json.RawMessage `json:"Lat"`
}

// gbfsEnvelope matches the GBFS station_information wrapper.
type gbfsEnvelope struct {
	Data struct {
		Stations []rawStation `json:"stations"`
	} `json:"data"`
}

func coordFromRaw(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func (r rawStation) normalize() Station {
	st := Station{ShortName: r.ShortName, Name: r.Name}
	if st.ShortName == "" {
		st.ShortName = r.Number
	}
	if st.Name == "" {
		st.Name = r.AltName
	}
	if lon, ok := coordFromRaw(r.Lon); ok {
		st.Lon = lon
	} else if lon, ok := coordFromRaw(r.Long); ok {
		st.Lon = lon
	}
	if lat, ok := coordFromRaw(r.Lat); ok {
		st.Lat = lat
	} else if lat, ok := coordFromRaw(r.AltLat); ok {
		st.Lat = lat
	}
	return st
}

// ParseStationsJSON reads station records from either a bare JSON array or a
// GBFS station_information envelope, normalizing field names to the
// canonical Station shape.
func ParseStationsJSON(data []byte) ([]Station, error) {
	var raws []rawStation
	if err := json.Unmarshal(data, &raws); err != nil {
		var env gbfsEnvelope
		if err2 := json.Unmarshal(data, &env); err2 != nil {
			return nil, fmt.Errorf("parse stations json: %w", err)
		}
		raws = env.Data.Stations
	}
	if len(raws) == 0 {
		return nil, errors.New("stations json contains no stations")
	}
	out := make([]Station, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.normalize())
	}
	return out, nil
}
