package serial

type DataBits int

func (d DataBits) Int() int {
	return int(d)
}

const (
	DataBits5 DataBits = 5
	DataBits6 DataBits = 6
	DataBits7 DataBits = 7
	DataBits8 DataBits = 8
)

// NormalizeDataBits clamps an arbitrary data-bits value to a supported one.
// Anything outside 5-8 falls back to DataBits8.
func NormalizeDataBits(v int) DataBits {
	if v < 5 || v > 8 {
		return DataBits8
	}
	return DataBits(v)
}
