package models

// TableCode is one generated table QR entry. Value is the exact URL
// encoded into the image; regenerating with the same inputs yields a
// byte-identical Value.
type TableCode struct {
	Table int    `json:"table"`
	Value string `json:"value"`
	Image []byte `json:"image,omitempty"` // PNG
}
