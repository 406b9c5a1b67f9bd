package plan

import (
	"github.com/sirupsen/logrus"
)

// Engine собирает планы работ по тендерам и назначает ответственных.
// Состояния между вызовами не хранит: каждый вызов читает свежий снимок из Gateway.
type Engine struct {
	gw    Gateway
	rules Rules
	log   *logrus.Entry
}

func NewEngine(gw Gateway, rules Rules, log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		gw:    gw,
		rules: rules.Normalized(),
		log:   log.WithField("component", "plan"),
	}
}

func (e *Engine) Rules() Rules {
	return e.rules
}
