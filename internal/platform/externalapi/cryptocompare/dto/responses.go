// Package dto defines data transfer objects for the CryptoCompare API responses.
package dto

// Envelope is the error shape every endpoint may return with HTTP 200.
type Envelope struct {
	Response string `json:"Response"`
	Message  string `json:"Message"`
}

// CoinInfo is a single entry of the coin-listing endpoint.
type CoinInfo struct {
	CoinName    string `json:"CoinName"`
	ImageURL    string `json:"ImageUrl"`
	Description string `json:"Description"`
}

// CoinListResponse represents the JSON response from /data/all/coinlist.
type CoinListResponse struct {
	Envelope
	Data map[string]CoinInfo `json:"Data"`
}

// HistoMinuteResponse represents the JSON response from /data/v2/histominute.
type HistoMinuteResponse struct {
	Envelope
	Data struct {
		TimeFrom int64 `json:"TimeFrom"`
		TimeTo   int64 `json:"TimeTo"`
		Data     []struct {
			Time  int64   `json:"time"`
			Open  float64 `json:"open"`
			High  float64 `json:"high"`
			Low   float64 `json:"low"`
			Close float64 `json:"close"`
		} `json:"Data"`
	} `json:"Data"`
}
