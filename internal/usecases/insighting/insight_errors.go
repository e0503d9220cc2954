package insighting

import "errors"

var (
	ErrUnknownUsageKind = errors.New("unknown usage kind")
	ErrLoadDataset      = errors.New("error loading dataset")
	ErrListNames        = errors.New("error listing names")
)
