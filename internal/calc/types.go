package calc

// ConvertRequest is the JSON body for POST /calculator/convert.
// Kind is "length" (meters to kilometers) or "mass" (kilograms to grams).
type ConvertRequest struct {
	Value float64 `json:"value"`
	Kind  string  `json:"kind"`
}

// ConvertResponse is the JSON response for the unit conversion page.
type ConvertResponse struct {
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Result float64 `json:"result"`
}

// TemperatureRequest is the JSON body for POST /calculator/temperature.
// Direction is "c_to_f" or "f_to_c".
type TemperatureRequest struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

// TemperatureResponse is the JSON response for the temperature page.
type TemperatureResponse struct {
	Direction string  `json:"direction"`
	Value     float64 `json:"value"`
	Result    float64 `json:"result"`
}

// BMIRequest is the JSON body for POST /calculator/bmi.
type BMIRequest struct {
	WeightKg float64 `json:"weight_kg"`
	HeightM  float64 `json:"height_m"`
}

// BMIResponse is the JSON response for the BMI page.
type BMIResponse struct {
	BMI float64 `json:"bmi"`
}

// PerUnitRequest is the JSON body for the per-unit page and its export
// endpoints.
type PerUnitRequest struct {
	BaseMVA  float64 `json:"base_mva"`
	BaseKV   float64 `json:"base_kv"`
	LengthKm float64 `json:"length_km"`
	RPerKm   float64 `json:"r_per_km"`
	XPerKm   float64 `json:"x_per_km"`
	BPerKm   float64 `json:"b_per_km"`
}

// PerUnitResponse is the JSON response for the per-unit page. Per-unit
// and total values are rounded to six decimal places, matching the
// display and export contract.
type PerUnitResponse struct {
	ZBase  float64 `json:"z_base"`
	YBase  float64 `json:"y_base"`
	RTotal float64 `json:"r_total"`
	XTotal float64 `json:"x_total"`
	BTotal float64 `json:"b_total"`
	RPu    float64 `json:"r_pu"`
	XPu    float64 `json:"x_pu"`
	BPu    float64 `json:"b_pu"`
}

// ZIPRequest is the JSON body for the ZIP load model page, its export
// endpoints and curve downloads. V is the operating voltage in p.u.
type ZIPRequest struct {
	P0 float64 `json:"p0"`
	Q0 float64 `json:"q0"`
	V0 float64 `json:"v0"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	D  float64 `json:"d"`
	E  float64 `json:"e"`
	V  float64 `json:"v"`
}

// ZIPResponse is the JSON response for the ZIP load model page. C and F
// are the derived constant-power shares.
type ZIPResponse struct {
	V float64 `json:"v"`
	P float64 `json:"p"`
	Q float64 `json:"q"`
	C float64 `json:"c"`
	F float64 `json:"f"`
}
