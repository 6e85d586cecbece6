package tickets

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"couchfest/db"
	"couchfest/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	Store *db.Store
	// HMACSecret signs the QR payload on printed tickets.
	HMACSecret []byte
}

func (h *Handler) GetTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log.Println("Getting Tickets")
	tickets := h.Store.FetchTickets(r.Context())
	if len(tickets) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Tickets not found here.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tickets)
}

// qrPayload returns "eventID|ticketNumber|timestamp|signature".
func (h *Handler) qrPayload(eventID, ticketNumber string, ts int64) string {
	data := fmt.Sprintf("%s|%s|%d", eventID, ticketNumber, ts)
	mac := hmac.New(sha256.New, h.HMACSecret)
	mac.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintTicket renders a purchased ticket as a PDF with a signed QR code so it
// can be verified at the door.
func (h *Handler) PrintTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ticketNumber := ps.ByName("ticket_number")

	ticket := h.Store.FetchTicket(r.Context(), ticketNumber)
	if ticket == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Ticket %s not found here.", ticketNumber))
		return
	}
	eventID, _ := ticket["EventID"].(string)
	userID, _ := ticket["UserID"].(string)
	purchaseDate, _ := ticket["PurchaseDate"].(string)

	qrPNG, err := qrcode.Encode(h.qrPayload(eventID, ticketNumber, time.Now().Unix()), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Event Ticket")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Ticket Number: %s", ticketNumber))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Event ID: %s", eventID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("User ID: %s", userID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Purchased: %s", purchaseDate))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=ticket-"+ticketNumber+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
