package nftModels

import (
	"github.com/wanderers-nft/nft-metadata/types"
)

// DisplayType controls how a marketplace renders a numerical attribute.
type DisplayType string

const (
	DisplayTypeNumber          DisplayType = "number"
	DisplayTypeBoostPercentage DisplayType = "boost_percentage"
	DisplayTypeBoostNumber     DisplayType = "boost_number"
	DisplayTypeDate            DisplayType = "date"
)

// ParseDisplayType maps a wire token onto the closed DisplayType set.
func ParseDisplayType(token string) (DisplayType, error) {
	switch DisplayType(token) {
	case DisplayTypeNumber, DisplayTypeBoostPercentage, DisplayTypeBoostNumber, DisplayTypeDate:
		return DisplayType(token), nil
	}
	return "", &types.UnknownEnumTokenError{Token: token}
}

func (d DisplayType) String() string {
	return string(d)
}
