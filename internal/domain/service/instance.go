package service

import (
	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
)

type Instance struct {
	Hackathon contract.HackathonService
	Poller    *poller
}

func NewInstance(dm contract.DataManager, sheets contract.SheetsClient, notifier contract.Notifier,
	tracking contract.TrackingStore, settings Settings) *Instance {
	p := newPoller(dm, sheets, notifier, tracking, settings)

	return &Instance{
		Hackathon: newHackathonService(dm, sheets, notifier, tracking, p, settings),
		Poller:    p,
	}
}
