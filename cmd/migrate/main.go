// Command migrate copies the legacy MySQL records into the document store.
// It is a one-off tool: the document store is authoritative afterwards and
// the target collections are replaced wholesale.
//
//	go run ./cmd/migrate            # mysql -> mongo
//	go run ./cmd/migrate -fix-refs  # assign refs to bookings missing one
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/repository"
	"hotel-backoffice/utils"
)

func main() {
	fixRefs := flag.Bool("fix-refs", false, "assign booking refs to documents missing one instead of migrating")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg := config.Get()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	mongoClient, db, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("document store connect failed")
	}
	defer mongoClient.Disconnect(context.Background())

	bookingRepo := repository.NewBookingRepository(db)

	if *fixRefs {
		if err := fixMissingRefs(ctx, bookingRepo); err != nil {
			log.Fatal().Err(err).Msg("booking ref repair failed")
		}
		return
	}

	customerRepo := repository.NewCustomerRepository(db)
	if err := migrateFromLegacy(ctx, cfg, customerRepo, bookingRepo); err != nil {
		var myErr *mysqldrv.MySQLError
		if errors.As(err, &myErr) {
			log.Fatal().Uint16("mysqlError", myErr.Number).Str("message", myErr.Message).
				Msg("legacy store rejected the migration")
		}
		log.Fatal().Err(err).Msg("migration failed")
	}
}

func migrateFromLegacy(
	ctx context.Context,
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
	bookingRepo repository.BookingRepository,
) error {
	legacy, err := config.ConnectLegacy(cfg)
	if err != nil {
		return pkgerrors.Wrap(err, "connect legacy store")
	}

	var legacyCustomers []models.LegacyCustomer
	if err := legacy.Find(&legacyCustomers).Error; err != nil {
		return pkgerrors.Wrap(err, "read legacy customers")
	}
	log.Info().Int("count", len(legacyCustomers)).Msg("legacy customers loaded")

	var legacyBookings []models.LegacyBooking
	if err := legacy.Find(&legacyBookings).Error; err != nil {
		return pkgerrors.Wrap(err, "read legacy bookings")
	}
	log.Info().Int("count", len(legacyBookings)).Msg("legacy bookings loaded")

	now := time.Now().UTC()

	customers := make([]models.Customer, 0, len(legacyCustomers))
	for _, lc := range legacyCustomers {
		ref, err := utils.NewCustomerRef()
		if err != nil {
			return err
		}
		customers = append(customers, models.Customer{
			CustomerRef:  ref,
			CustomerName: lc.Name,
			Gender:       lc.Gender,
			Mobile:       utils.NormalizePhoneNumber(lc.Phone),
			Email:        lc.Email,
			Nationality:  lc.Nationality,
			IDProofType:  models.IDProofDrivingLicence,
			Address:      lc.Address,
			CreatedAt:    lc.CreatedAt,
			UpdatedAt:    now,
		})
	}

	bookings := make([]models.Booking, 0, len(legacyBookings))
	for _, lb := range legacyBookings {
		ref, err := utils.NewBookingRef()
		if err != nil {
			return err
		}
		checkIn := time.Time(lb.CheckInDate)
		checkOut := time.Time(lb.CheckOutDate)
		bookings = append(bookings, models.Booking{
			BookingRef:     ref,
			CustomerRef:    utils.NormalizePhoneNumber(lb.CustomerPhone),
			RoomNumber:     lb.RoomNo,
			RoomType:       lb.RoomType,
			Meal:           lb.Meal,
			NumberOfGuests: 1,
			CheckInDate:    &checkIn,
			CheckOutDate:   &checkOut,
			NoOfDays:       lb.NoOfDays,
			PaidTax:        lb.PaidTax,
			ActualTotal:    lb.ActualTotal,
			TotalCost:      lb.TotalCost,
			TotalAmount:    lb.TotalCost,
			Status:         models.StatusPending,
			PaymentStatus:  models.PaymentPending,
			CreatedAt:      lb.CreatedAt,
			UpdatedAt:      now,
		})
	}

	if err := customerRepo.ReplaceAll(ctx, customers); err != nil {
		return err
	}
	if err := bookingRepo.ReplaceAll(ctx, bookings); err != nil {
		return err
	}

	log.Info().
		Int("customers", len(customers)).
		Int("bookings", len(bookings)).
		Msg("migration completed")
	return nil
}

func fixMissingRefs(ctx context.Context, bookingRepo repository.BookingRepository) error {
	bookings, err := bookingRepo.FindMissingRefs(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		log.Info().Msg("no bookings missing a reference")
		return nil
	}

	for _, b := range bookings {
		ref, err := utils.NewBookingRef()
		if err != nil {
			return err
		}
		if err := bookingRepo.SetBookingRef(ctx, b.CustomerRef, ref); err != nil {
			return err
		}
		log.Info().Str("customerRef", b.CustomerRef).Str("bookingRef", ref).Msg("booking ref assigned")
	}

	log.Info().Int("repaired", len(bookings)).Msg("booking ref repair completed")
	return nil
}
