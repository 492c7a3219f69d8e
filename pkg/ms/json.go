package ms

import (
	"encoding/json"
	"math"
	"time"
)

// priceRecordJSON is the wire shape of a PriceRecord: absent fields
// (NaN floats, zero dates) travel as null instead of breaking the
// encoder or masquerading as zero.
type priceRecordJSON struct {
	Date         *string  `json:"date"`
	Open         *float64 `json:"open"`
	High         *float64 `json:"high"`
	Low          *float64 `json:"low"`
	Close        *float64 `json:"close"`
	Volume       *float64 `json:"volume"`
	OpenInterest *float64 `json:"open_interest"`
}

const dateLayout = "2006-01-02"

func (r PriceRecord) MarshalJSON() ([]byte, error) {
	out := priceRecordJSON{
		Open:         jsonFloat(r.Open),
		High:         jsonFloat(r.High),
		Low:          jsonFloat(r.Low),
		Close:        jsonFloat(r.Close),
		Volume:       jsonFloat(r.Volume),
		OpenInterest: jsonFloat(r.OpenInterest),
	}
	if !r.Date.IsZero() {
		s := r.Date.Format(dateLayout)
		out.Date = &s
	}
	return json.Marshal(out)
}

func (r *PriceRecord) UnmarshalJSON(data []byte) error {
	var in priceRecordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Date != nil {
		t, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return err
		}
		r.Date = t
	} else {
		r.Date = time.Time{}
	}
	r.Open = fromJSONFloat(in.Open)
	r.High = fromJSONFloat(in.High)
	r.Low = fromJSONFloat(in.Low)
	r.Close = fromJSONFloat(in.Close)
	r.Volume = fromJSONFloat(in.Volume)
	r.OpenInterest = fromJSONFloat(in.OpenInterest)
	return nil
}

func jsonFloat(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

func fromJSONFloat(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
