package services

import (
	"campusmarket/apperrors"
	"campusmarket/models"
)

// actorRule menyatakan siapa yang boleh mendorong sebuah transisi.
// Admin selalu lolos cek peran, tapi tetap terikat cek state.
type actorRule int

const (
	ruleBuyer actorRule = iota
	ruleSeller
	ruleParticipant
)

type transitionRule struct {
	// from berisi state sumber yang diizinkan; nil berarti semua
	// state non-terminal.
	from       map[models.StatusTransaksi]bool
	actor      actorRule
	denyReason string
}

// transitionRules adalah tabel transisi tunggal pengganti cek peran
// yang tersebar per-endpoint.
var transitionRules = map[models.StatusTransaksi]transitionRule{
	models.TransaksiDibayar: {
		actor:      ruleBuyer,
		denyReason: "Only the buyer can mark a transaction as paid",
	},
	models.TransaksiDiproses: {
		from:       map[models.StatusTransaksi]bool{models.TransaksiDibayar: true},
		actor:      ruleSeller,
		denyReason: "Only the seller can process or ship an item",
	},
	models.TransaksiDikirim: {
		from:       map[models.StatusTransaksi]bool{models.TransaksiDiproses: true},
		actor:      ruleSeller,
		denyReason: "Only the seller can process or ship an item",
	},
	models.TransaksiSelesai: {
		from:       map[models.StatusTransaksi]bool{models.TransaksiDikirim: true},
		actor:      ruleBuyer,
		denyReason: "Only the buyer can complete a transaction",
	},
	models.TransaksiDibatalkan: {
		actor:      ruleParticipant,
		denyReason: "Only a transaction participant can cancel it",
	},
}

// validateTransition memeriksa satu transisi terhadap tabel di atas.
// Urutan cek: state dulu, lalu peran, supaya transisi basi dari aktor
// yang sah tetap terdeteksi sebagai basi.
func validateTransition(current, requested models.StatusTransaksi, isBuyer, isSeller, isAdmin bool) error {
	rule, ok := transitionRules[requested]
	if !ok {
		// pending hanya state awal, tidak pernah jadi target transisi
		return apperrors.Validation("Invalid status")
	}

	if current.IsTerminal() {
		return apperrors.InvalidOperation("Transaction is already " + string(current))
	}
	if requested == current {
		return apperrors.InvalidOperation("Transaction is already " + string(current))
	}
	if rule.from != nil && !rule.from[current] {
		return apperrors.InvalidOperation(
			"Cannot move transaction from " + string(current) + " to " + string(requested))
	}

	if isAdmin {
		return nil
	}
	switch rule.actor {
	case ruleBuyer:
		if !isBuyer {
			return apperrors.Authorization(rule.denyReason)
		}
	case ruleSeller:
		if !isSeller {
			return apperrors.Authorization(rule.denyReason)
		}
	case ruleParticipant:
		if !isBuyer && !isSeller {
			return apperrors.Authorization(rule.denyReason)
		}
	}
	return nil
}
