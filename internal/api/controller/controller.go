package controller

import (
	"github.com/opsgain/portops/internal/pkg/store"
	"github.com/opsgain/portops/internal/service/dataset"
	"github.com/opsgain/portops/internal/service/finance"
	"github.com/opsgain/portops/internal/service/sharelink"
)

type Controller struct {
	sync  *dataset.Synchronizer
	calc  *finance.Calculator
	codec *sharelink.Codec
	store store.Store
}

func NewController(sync *dataset.Synchronizer, calc *finance.Calculator, codec *sharelink.Codec, st store.Store) *Controller {
	return &Controller{sync: sync, calc: calc, codec: codec, store: st}
}
