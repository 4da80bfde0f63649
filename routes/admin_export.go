package routes

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/kataras/iris/v12"
)

// Fixed sales-report column order; external consumers rely on it.
var bookingCSVHeaders = []string{
	"Fecha Reserva", "Fecha Tour", "Cliente", "Email", "Teléfono",
	"Nacionalidad", "Tarifa", "Cant.", "Total", "Pickup",
}

type exportJob struct {
	ID        string
	TourID    string
	Status    string // pending, processing, done
	CreatedAt int64
	artifact  []byte
}

var (
	exportJobs   = map[string]*exportJob{}
	exportJobsMu sync.Mutex
)

// bookingsCSV renders the sales report for one tour, BOM-prefixed so
// spreadsheets pick up the encoding.
func bookingsCSV(tourID string) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	writer := csv.NewWriter(&buf)
	writer.Write(bookingCSVHeaders)
	for _, b := range storage.BookingsByTourID(tourID) {
		writer.Write(bookingCSVRow(b))
	}
	writer.Flush()
	return buf.Bytes()
}

func exportFilename(tourID string) string {
	return "Ventas_" + strings.ReplaceAll(tourID, " ", "_") + ".csv"
}

// AdminExportTourBookingsCSV streams the sales report for one tour as a
// direct CSV download.
func AdminExportTourBookingsCSV(ctx iris.Context) {
	tourID := ctx.Params().GetString("id")
	if tourID == "" {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+exportFilename(tourID)+`"`)
	ctx.ContentType("text/csv")
	ctx.Write(bookingsCSV(tourID))
}

func bookingCSVRow(b models.Booking) []string {
	tariff := "Extranjero"
	if b.CustomerType == "national" {
		tariff = "Nacional"
	}
	return []string{
		b.BookingDate,
		b.DateOfTour,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.CustomerNationality,
		tariff,
		fmt.Sprintf("%d", b.Quantity),
		fmt.Sprintf("%.2f", b.TotalPrice),
		b.SelectedPickupLocation,
	}
}

// AdminCreateExport queues a sales-report build for one tour. The job renders
// the same CSV as the direct download and caches it for AdminGetExport.
func AdminCreateExport(ctx iris.Context) {
	var body struct {
		TourID string `json:"tourId"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.TourID == "" {
		ctx.StatusCode(iris.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"error": "invalid_payload", "message": "tourId required"})
		return
	}
	if findTour(body.TourID) == nil {
		utils.CreateNotFound(ctx)
		return
	}

	id := time.Now().Format("20060102150405.000000")
	job := &exportJob{ID: id, TourID: body.TourID, Status: "pending", CreatedAt: time.Now().Unix()}
	exportJobsMu.Lock()
	exportJobs[id] = job
	exportJobsMu.Unlock()

	go func(j *exportJob) {
		exportJobsMu.Lock()
		j.Status = "processing"
		exportJobsMu.Unlock()
		artifact := bookingsCSV(j.TourID)
		exportJobsMu.Lock()
		j.artifact = artifact
		j.Status = "done"
		exportJobsMu.Unlock()
	}(job)

	exportJobsMu.Lock()
	status := job.Status
	exportJobsMu.Unlock()
	ctx.JSON(iris.Map{"data": iris.Map{"id": id, "status": status}})
}

// AdminGetExport reports job progress and, once the report is built, serves
// the cached CSV.
func AdminGetExport(ctx iris.Context) {
	id := ctx.Params().GetString("id")

	exportJobsMu.Lock()
	job, ok := exportJobs[id]
	var status, tourID string
	var artifact []byte
	if ok {
		status = job.Status
		tourID = job.TourID
		artifact = job.artifact
	}
	exportJobsMu.Unlock()

	if !ok {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"error": "not_found", "message": "job not found"})
		return
	}
	if status != "done" {
		ctx.JSON(iris.Map{"data": iris.Map{"id": id, "tourId": tourID, "status": status}})
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+exportFilename(tourID)+`"`)
	ctx.ContentType("text/csv")
	ctx.Write(artifact)
}
