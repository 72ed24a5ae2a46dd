package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and
// explicit false.
type GenerateRequest struct {
	Length            int   `json:"length"`
	Uppercase         *bool `json:"uppercase"`
	Lowercase         *bool `json:"lowercase"`
	Digits            *bool `json:"digits"`
	Symbols           *bool `json:"symbols"`
	ExcludeAmbiguous  *bool `json:"exclude_ambiguous"`
	GuaranteeEachType *bool `json:"guarantee_each_type"`
}

// GenerateResponse represents a password generation response. EntropyBits
// and Strength describe the search space the password was drawn from; they
// are display values only.
type GenerateResponse struct {
	Password    string `json:"password"`
	Length      int    `json:"length"`
	EntropyBits int    `json:"entropy_bits"`
	Strength    string `json:"strength"`
}

// EntropyRequest represents a standalone entropy estimate request for an
// arbitrary length and alphabet size, without generating anything.
type EntropyRequest struct {
	Length       int `json:"length"`
	AlphabetSize int `json:"alphabet_size"`
}

// EntropyResponse represents a standalone entropy estimate.
type EntropyResponse struct {
	EntropyBits int    `json:"entropy_bits"`
	Strength    string `json:"strength"`
}
