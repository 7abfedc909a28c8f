// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
)

func (r *mongoAppointmentRepo) ClaimSlotTransactionally(
	ctx context.Context,
	slotID, patientID string,
) (*models.Appointment, error) {
	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		SlotID:    slotID,
		Status:    models.AppointmentScheduled,
		CreatedAt: time.Now().UTC(),
	}

	txnFn := func(sc mongo.SessionContext) error {
		// Single conditional write: the slot is booked and stamped with the
		// appointment reference only if it is still free. Concurrent claims
		// on the same slot race on this one document update; exactly one
		// can match.
		filter := bson.M{"id": slotID, "status": models.SlotFree}
		update := bson.M{"$set": bson.M{
			"status":        models.SlotBooked,
			"appointmentId": appt.ID,
		}}

		var slot models.Slot
		err := r.slotColl.FindOneAndUpdate(sc, filter, update).Decode(&slot)
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No match: either the slot does not exist or it is no longer free.
			lookupErr := r.slotColl.FindOne(sc, bson.M{"id": slotID}).Err()
			if errors.Is(lookupErr, mongo.ErrNoDocuments) {
				return ErrSlotNotFound
			}
			if lookupErr != nil {
				return fmt.Errorf("slot lookup failed: %w", lookupErr)
			}
			return ErrSlotNotFree
		}
		if err != nil {
			return fmt.Errorf("conditional slot update failed: %w", err)
		}

		appt.DoctorID = slot.DoctorID

		// The unique slotId index is the structural backstop: even if a
		// booked slot were ever reachable here, a second appointment for
		// the same slot cannot be inserted, and the abort below restores
		// the slot's previous state.
		if _, err := r.apptColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrSlotNotFree) {
			return nil, err
		}
		return nil, fmt.Errorf("claim transaction failed: %w", err)
	}

	return appt, nil
}
