package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/domain/transfer"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
	"github.com/riskibarqy/franchise-manager/internal/platform/random"
)

const transferContractYears = 2

// TransferService brokers player sales between teams and contract
// renewals within a team. Offer settlement writes to two team budgets,
// the player, and the offer as sequential steps without a transaction.
type TransferService struct {
	state        gamestate.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	transferRepo transfer.Repository
	ids          idgen.Generator
	rng          random.Source
	logger       *slog.Logger
}

func NewTransferService(
	state gamestate.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	transferRepo transfer.Repository,
	ids idgen.Generator,
	rng random.Source,
	logger *slog.Logger,
) *TransferService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TransferService{
		state:        state,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		transferRepo: transferRepo,
		ids:          ids,
		rng:          rng,
		logger:       logger,
	}
}

// ListPlayerForTransfer puts one of the managed team's players on the
// transfer market at the given asking price.
func (s *TransferService) ListPlayerForTransfer(ctx context.Context, playerID string, askingPrice int64) error {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return err
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found || p.TeamID != current.ID {
		return fmt.Errorf("%w: player %s is not on the managed team", ErrNotFound, playerID)
	}
	if askingPrice < 0 {
		return fmt.Errorf("%w: asking price cannot be negative", ErrInvalidInput)
	}

	p.Status = player.StatusTransferListed
	p.TransferValue = askingPrice
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("list player for transfer: %w", err)
	}

	s.logger.InfoContext(ctx, "player listed for transfer",
		"player_id", p.ID,
		"asking_price", askingPrice,
	)

	return nil
}

// MakeTransferOffer creates a pending offer from the managed team for
// a player owned by another team. The offer only reserves intent; no
// money moves until the owning team responds.
func (s *TransferService) MakeTransferOffer(ctx context.Context, playerID string, amount, weeklySalary int64) (transfer.Offer, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return transfer.Offer{}, err
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return transfer.Offer{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return transfer.Offer{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	if p.TeamID == current.ID {
		return transfer.Offer{}, fmt.Errorf("%w: player already belongs to the managed team", ErrInvalidOperation)
	}
	if current.Budget < amount {
		return transfer.Offer{}, fmt.Errorf("%w: budget %d below offer amount %d", ErrInsufficientResource, current.Budget, amount)
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return transfer.Offer{}, fmt.Errorf("get current date: %w", err)
	}

	offerID, err := s.ids.NewID()
	if err != nil {
		return transfer.Offer{}, fmt.Errorf("generate offer id: %w", err)
	}

	offer := transfer.Offer{
		ID:                  offerID,
		PlayerID:            p.ID,
		FromTeamID:          current.ID,
		ToTeamID:            p.TeamID,
		OfferedAmount:       amount,
		OfferedWeeklySalary: weeklySalary,
		OfferDate:           today,
		Status:              transfer.StatusPending,
	}
	if err := offer.Validate(); err != nil {
		return transfer.Offer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.transferRepo.Create(ctx, offer); err != nil {
		return transfer.Offer{}, fmt.Errorf("create transfer offer: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer offer made",
		"offer_id", offer.ID,
		"player_id", p.ID,
		"amount", amount,
	)

	return offer, nil
}

// RespondToTransferOffer settles a pending offer from the selling
// side. On accept the buyer pays the amount to the seller, the player
// moves to the buying team on a fresh two-year contract at the offered
// salary, and the offer completes. On reject only the offer changes.
func (s *TransferService) RespondToTransferOffer(ctx context.Context, offerID string, accept bool) error {
	offer, found, err := s.transferRepo.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get transfer offer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: transfer offer %s", ErrNotFound, offerID)
	}
	if offer.Terminal() {
		return fmt.Errorf("%w: transfer offer %s is already %s", ErrInvalidOperation, offerID, offer.Status)
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}
	offer.ResponseDate = &today

	if !accept {
		offer.Status = transfer.StatusRejected
		if err := s.transferRepo.Update(ctx, offer); err != nil {
			return fmt.Errorf("reject transfer offer: %w", err)
		}
		return nil
	}

	p, found, err := s.playerRepo.GetByID(ctx, offer.PlayerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player %s", ErrNotFound, offer.PlayerID)
	}

	buyer, found, err := s.teamRepo.GetByID(ctx, offer.FromTeamID)
	if err != nil {
		return fmt.Errorf("get buying team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team %s", ErrNotFound, offer.FromTeamID)
	}
	seller, found, err := s.teamRepo.GetByID(ctx, offer.ToTeamID)
	if err != nil {
		return fmt.Errorf("get selling team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team %s", ErrNotFound, offer.ToTeamID)
	}

	buyer.Budget -= offer.OfferedAmount
	seller.Budget += offer.OfferedAmount
	if err := s.teamRepo.Update(ctx, buyer); err != nil {
		return fmt.Errorf("debit buying team: %w", err)
	}
	if err := s.teamRepo.Update(ctx, seller); err != nil {
		return fmt.Errorf("credit selling team: %w", err)
	}

	p.TeamID = buyer.ID
	p.WeeklySalary = offer.OfferedWeeklySalary
	p.ContractStart = today
	p.ContractEnd = today.AddDate(transferContractYears, 0, 0)
	p.Status = player.StatusAvailable
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("reassign player: %w", err)
	}

	offer.Status = transfer.StatusCompleted
	if err := s.transferRepo.Update(ctx, offer); err != nil {
		return fmt.Errorf("complete transfer offer: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer offer completed",
		"offer_id", offer.ID,
		"player_id", p.ID,
		"buyer_id", buyer.ID,
		"seller_id", seller.ID,
		"amount", offer.OfferedAmount,
	)

	return nil
}

// AcceptTransferOffer is the squad-bookkeeping variant of accepting an
// offer: the money moves from the offering team to the owning team and
// the player's salary updates to the offered figure, but the player
// stays registered with the owning team and keeps the existing
// contract dates. A missing offer is silently ignored.
func (s *TransferService) AcceptTransferOffer(ctx context.Context, offerID string) error {
	offer, found, err := s.transferRepo.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get transfer offer: %w", err)
	}
	if !found {
		return nil
	}

	p, found, err := s.playerRepo.GetByID(ctx, offer.PlayerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player %s", ErrNotFound, offer.PlayerID)
	}

	buyer, found, err := s.teamRepo.GetByID(ctx, offer.FromTeamID)
	if err != nil {
		return fmt.Errorf("get buying team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team %s", ErrNotFound, offer.FromTeamID)
	}
	seller, found, err := s.teamRepo.GetByID(ctx, offer.ToTeamID)
	if err != nil {
		return fmt.Errorf("get selling team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team %s", ErrNotFound, offer.ToTeamID)
	}

	buyer.Budget -= offer.OfferedAmount
	seller.Budget += offer.OfferedAmount
	if err := s.teamRepo.Update(ctx, buyer); err != nil {
		return fmt.Errorf("debit buying team: %w", err)
	}
	if err := s.teamRepo.Update(ctx, seller); err != nil {
		return fmt.Errorf("credit selling team: %w", err)
	}

	p.TeamID = offer.ToTeamID
	p.WeeklySalary = offer.OfferedWeeklySalary
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}
	offer.ResponseDate = &today
	offer.Status = transfer.StatusAccepted
	if err := s.transferRepo.Update(ctx, offer); err != nil {
		return fmt.Errorf("accept transfer offer: %w", err)
	}

	return nil
}

// RejectTransferOffer marks an offer Rejected. A missing offer is
// silently ignored, matching AcceptTransferOffer.
func (s *TransferService) RejectTransferOffer(ctx context.Context, offerID string) error {
	offer, found, err := s.transferRepo.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get transfer offer: %w", err)
	}
	if !found {
		return nil
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}
	offer.ResponseDate = &today
	offer.Status = transfer.StatusRejected
	if err := s.transferRepo.Update(ctx, offer); err != nil {
		return fmt.Errorf("reject transfer offer: %w", err)
	}

	return nil
}

// CancelTransferOffer withdraws a pending offer. Only the team that
// made the offer may cancel it.
func (s *TransferService) CancelTransferOffer(ctx context.Context, offerID string) error {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return err
	}

	offer, found, err := s.transferRepo.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get transfer offer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: transfer offer %s", ErrNotFound, offerID)
	}
	if offer.FromTeamID != current.ID {
		return fmt.Errorf("%w: only the offering team may cancel", ErrInvalidOperation)
	}
	if offer.Terminal() {
		return fmt.Errorf("%w: transfer offer %s is already %s", ErrInvalidOperation, offerID, offer.Status)
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}
	offer.Status = transfer.StatusCancelled
	offer.ResponseDate = &today
	if err := s.transferRepo.Update(ctx, offer); err != nil {
		return fmt.Errorf("cancel transfer offer: %w", err)
	}

	return nil
}

// RenewContract negotiates a contract extension with one of the
// managed team's players. Acceptance is a single roll against a
// probability that starts at 50 percent, drops 20 for High performers,
// rises 20 for Critical ones, and gains 5 points per full 10 percent
// of relative salary increase. A rejected renewal mutates nothing.
func (s *TransferService) RenewContract(ctx context.Context, playerID string, extensionYears int, salaryIncrease int64) (bool, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return false, err
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return false, fmt.Errorf("get player: %w", err)
	}
	if !found || p.TeamID != current.ID {
		return false, fmt.Errorf("%w: player %s is not on the managed team", ErrNotFound, playerID)
	}
	if extensionYears <= 0 {
		return false, fmt.Errorf("%w: extension must be at least one year", ErrInvalidInput)
	}

	chance := 50
	switch p.Performance {
	case player.PerformanceHigh:
		chance -= 20
	case player.PerformanceCritical:
		chance += 20
	}
	if p.WeeklySalary > 0 && salaryIncrease > 0 {
		increasePct := salaryIncrease * 100 / p.WeeklySalary
		chance += int(increasePct/10) * 5
	}

	accepted := random.Percent(s.rng, chance)
	s.logger.InfoContext(ctx, "contract renewal negotiated",
		"player_id", p.ID,
		"chance", chance,
		"accepted", accepted,
	)
	if !accepted {
		return false, nil
	}

	newEnd := p.ContractEnd.AddDate(extensionYears, 0, 0)
	newSalary := p.WeeklySalary + salaryIncrease
	if err := s.UpdatePlayerContract(ctx, playerID, newEnd, newSalary); err != nil {
		return false, err
	}

	return true, nil
}

// UpdatePlayerContract commits a new contract end date and weekly
// salary for a player on the managed team. The team must be able to
// cover the annualized salary delta, fifty-two weeks of the increase,
// which is charged to the budget up front. The player's status resets
// to Active. A pay cut credits the budget the same way.
func (s *TransferService) UpdatePlayerContract(ctx context.Context, playerID string, contractEnd time.Time, weeklySalary int64) error {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return err
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found || p.TeamID != current.ID {
		return fmt.Errorf("%w: player %s is not on the managed team", ErrNotFound, playerID)
	}
	if weeklySalary < 0 {
		return fmt.Errorf("%w: weekly salary cannot be negative", ErrInvalidInput)
	}

	yearlyDelta := (weeklySalary - p.WeeklySalary) * 52
	if yearlyDelta > 0 && current.Budget < yearlyDelta {
		return fmt.Errorf("%w: budget %d cannot cover yearly salary delta %d", ErrInsufficientResource, current.Budget, yearlyDelta)
	}

	p.ContractEnd = contractEnd
	p.WeeklySalary = weeklySalary
	p.Status = player.StatusActive
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("update player contract: %w", err)
	}

	current.Budget -= yearlyDelta
	if err := s.teamRepo.Update(ctx, current); err != nil {
		return fmt.Errorf("charge salary delta: %w", err)
	}

	return nil
}

// PendingOffers lists the open offers other teams made for the managed
// team's players.
func (s *TransferService) PendingOffers(ctx context.Context) ([]transfer.Offer, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return nil, err
	}

	offers, err := s.transferRepo.ListPendingByTeam(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("list pending offers: %w", err)
	}

	return offers, nil
}

// TransferTargets lists transfer-listed players owned by other teams.
func (s *TransferService) TransferTargets(ctx context.Context) ([]player.Player, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return nil, err
	}

	targets, err := s.playerRepo.ListTransferListed(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("list transfer targets: %w", err)
	}

	return targets, nil
}
