package models

// Asset is a host known to the console.
type Asset struct {
	ID        int        `json:"id"`
	IP        string     `json:"ip,omitempty"`
	HostName  string     `json:"hostName,omitempty"`
	MAC       string     `json:"mac,omitempty"`
	OS        string     `json:"os,omitempty"`
	RiskScore float64    `json:"riskScore"`
	History   []AssetHit `json:"history,omitempty"`
}

// AssetHit is one entry of an asset's scan history.
type AssetHit struct {
	Date    string `json:"date"`
	ScanID  int    `json:"scanId,omitempty"`
	Type    string `json:"type"`
	Version int    `json:"version"`
}

func (a Asset) EntityID() int { return a.ID }

// EntityName falls back to the IP address for assets without a resolved host name.
func (a Asset) EntityName() string {
	if a.HostName != "" {
		return a.HostName
	}
	return a.IP
}

// LastScanDate returns the date of the most recent history entry, or "" if none.
func (a Asset) LastScanDate() string {
	last := ""
	for _, h := range a.History {
		if h.Date > last {
			last = h.Date
		}
	}
	return last
}
