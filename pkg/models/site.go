package models

// --- Site Models ---

type Site struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Assets       int     `json:"assets"`
	Importance   string  `json:"importance,omitempty"`
	RiskScore    float64 `json:"riskScore"`
	ScanEngine   int     `json:"scanEngine,omitempty"`
	ScanTemplate string  `json:"scanTemplate,omitempty"`
	Type         string  `json:"type,omitempty"`
	LastScanTime string  `json:"lastScanTime,omitempty"`
}

func (s Site) EntityID() int      { return s.ID }
func (s Site) EntityName() string { return s.Name }

// --- Scan Template Models ---

// ScanTemplate ids are strings on the console, e.g. "full-audit-without-web-spider".
type ScanTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (t ScanTemplate) EntityID() string   { return t.ID }
func (t ScanTemplate) EntityName() string { return t.Name }

// --- Engine Models ---

type Engine struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Port    int    `json:"port,omitempty"`
	Status  string `json:"status,omitempty"`
	Sites   []int  `json:"sites,omitempty"`
}

func (e Engine) EntityID() int      { return e.ID }
func (e Engine) EntityName() string { return e.Name }
