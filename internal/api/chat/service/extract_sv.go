package chatService

import (
	"context"
	"errors"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/sirupsen/logrus"
)

func (s *chatService) Extract(ctx context.Context, message string) (chat.ExtractResponse, error) {
	message, err := cleanMessage(message)
	if err != nil {
		return chat.ExtractResponse{}, err
	}

	intents := s.extractor.DetectMultipleIntents(message)
	targets := s.extractor.ExtractMultipleTargets(message)

	res := chat.ExtractResponse{
		Tokens:        s.extractor.ClassifyTokens(message),
		Amounts:       s.extractor.ExtractAmounts(message),
		Targets:       targets,
		TotalTarget:   nlp.CalculateTotalTarget(targets),
		Intents:       intentNames(intents),
		PrimaryIntent: string(s.extractor.DetectIntent(message)),
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"tokens":     len(res.Tokens),
		"intent":     res.PrimaryIntent,
	}).Debug("Message extracted")

	return res, nil
}

// Simulate returns the outcome together with the calculator error so callers
// can still show the narrative of a rejected input.
func (s *chatService) Simulate(ctx context.Context, req chat.SimulateRequest) (simulation.Outcome, error) {
	out, err := s.calculator.Simulate(simulation.Input{
		Target:         req.Target,
		Recurring:      req.Recurring,
		Unit:           simulation.PeriodUnit(req.Unit),
		CurrentBalance: req.CurrentBalance,
		GoalName:       req.GoalName,
	})
	if errors.Is(err, simulation.ErrInvalidPeriodUnit) {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"unit":       req.Unit,
		}).Warn("Invalid simulation period unit")
		return out, chat.ErrInvalidSimulation
	}

	return out, err
}
