package httpapi

import "net/http"

type listPlayerRequest struct {
	PlayerID    string `json:"player_id" validate:"required"`
	AskingPrice int64  `json:"asking_price" validate:"gte=0"`
}

func (h *Handler) ListPlayerForTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerForTransfer")
	defer span.End()

	var req listPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.transferService.ListPlayerForTransfer(ctx, req.PlayerID, req.AskingPrice); err != nil {
		h.logger.WarnContext(ctx, "list player for transfer failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"player_id":    req.PlayerID,
		"asking_price": req.AskingPrice,
	})
}

func (h *Handler) ListTransferTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransferTargets")
	defer span.End()

	players, err := h.transferService.TransferTargets(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "transfer targets failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

type makeOfferRequest struct {
	PlayerID     string `json:"player_id" validate:"required"`
	Amount       int64  `json:"amount" validate:"gte=0"`
	WeeklySalary int64  `json:"weekly_salary" validate:"gte=0"`
}

func (h *Handler) MakeTransferOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakeTransferOffer")
	defer span.End()

	var req makeOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	offer, err := h.transferService.MakeTransferOffer(ctx, req.PlayerID, req.Amount, req.WeeklySalary)
	if err != nil {
		h.logger.WarnContext(ctx, "make transfer offer failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, offerToDTO(offer))
}

func (h *Handler) ListPendingOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingOffers")
	defer span.End()

	offers, err := h.transferService.PendingOffers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "pending offers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]offerDTO, 0, len(offers))
	for _, item := range offers {
		items = append(items, offerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type respondOfferRequest struct {
	Accept bool `json:"accept"`
}

func (h *Handler) RespondToTransferOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RespondToTransferOffer")
	defer span.End()

	var req respondOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	offerID := r.PathValue("offerID")
	if err := h.transferService.RespondToTransferOffer(ctx, offerID, req.Accept); err != nil {
		h.logger.WarnContext(ctx, "respond to transfer offer failed", "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"offer_id": offerID, "accepted": req.Accept})
}

func (h *Handler) AcceptTransferOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AcceptTransferOffer")
	defer span.End()

	offerID := r.PathValue("offerID")
	if err := h.transferService.AcceptTransferOffer(ctx, offerID); err != nil {
		h.logger.WarnContext(ctx, "accept transfer offer failed", "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"offer_id": offerID, "status": "accepted"})
}

func (h *Handler) RejectTransferOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectTransferOffer")
	defer span.End()

	offerID := r.PathValue("offerID")
	if err := h.transferService.RejectTransferOffer(ctx, offerID); err != nil {
		h.logger.WarnContext(ctx, "reject transfer offer failed", "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"offer_id": offerID, "status": "rejected"})
}

func (h *Handler) CancelTransferOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelTransferOffer")
	defer span.End()

	offerID := r.PathValue("offerID")
	if err := h.transferService.CancelTransferOffer(ctx, offerID); err != nil {
		h.logger.WarnContext(ctx, "cancel transfer offer failed", "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"offer_id": offerID, "status": "cancelled"})
}

type renewContractRequest struct {
	PlayerID       string `json:"player_id" validate:"required"`
	ExtensionYears int    `json:"extension_years" validate:"gte=1,lte=10"`
	SalaryIncrease int64  `json:"salary_increase" validate:"gte=0"`
}

func (h *Handler) RenewContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenewContract")
	defer span.End()

	var req renewContractRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	accepted, err := h.transferService.RenewContract(ctx, req.PlayerID, req.ExtensionYears, req.SalaryIncrease)
	if err != nil {
		h.logger.WarnContext(ctx, "renew contract failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"player_id": req.PlayerID,
		"accepted":  accepted,
	})
}
