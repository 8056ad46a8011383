package domain

// OpennessLevel rates how accessible a municipality's gazettes are, "0" to "3".
type OpennessLevel string

const (
	OpennessLevelZero  OpennessLevel = "0"
	OpennessLevelOne   OpennessLevel = "1"
	OpennessLevelTwo   OpennessLevel = "2"
	OpennessLevelThree OpennessLevel = "3"
)

func (l OpennessLevel) IsValid() bool {
	switch l {
	case OpennessLevelZero, OpennessLevelOne, OpennessLevelTwo, OpennessLevelThree:
		return true
	}
	return false
}

type City struct {
	TerritoryID     string        `json:"territory_id"`
	TerritoryName   string        `json:"territory_name"`
	StateCode       string        `json:"state_code"`
	PublicationURLs []string      `json:"publication_urls,omitempty"`
	Level           OpennessLevel `json:"level"`
}
