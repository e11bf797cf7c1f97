package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const callbackJournalBucket = "vst_callbacks"

var ErrJournalKeySeparator = errors.New("payment_id must not contain NUL")

// CallbackJournalBoltRepository appends VST callbacks to a local bolt file.
//
// Keys are payment_id \x00 received_at \x00 id, so a prefix scan over one
// payment id returns its callbacks in arrival order.
type CallbackJournalBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.ICallbackJournal = (*CallbackJournalBoltRepository)(nil)

// NewCallbackJournalBoltRepository opens (or creates) the journal file at path.
func NewCallbackJournalBoltRepository(path string) (*CallbackJournalBoltRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(callbackJournalBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &CallbackJournalBoltRepository{db: db}, nil
}

func (r *CallbackJournalBoltRepository) Close() error {
	return r.db.Close()
}

func (r *CallbackJournalBoltRepository) Append(_ context.Context, n entities.CallbackNotification) error {
	if strings.ContainsRune(n.PaymentID, 0) {
		return ErrJournalKeySeparator
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := callbackJournalKey(n)

	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(callbackJournalBucket))
		if b.Get(key) != nil {
			return nil
		}
		return b.Put(key, data)
	})
}

func (r *CallbackJournalBoltRepository) ListByPaymentID(_ context.Context, paymentID string) ([]entities.CallbackNotification, error) {
	items := make([]entities.CallbackNotification, 0)
	if strings.ContainsRune(paymentID, 0) {
		return items, nil
	}
	prefix := append([]byte(paymentID), 0)

	err := r.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(callbackJournalBucket)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var n entities.CallbackNotification
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			items = append(items, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func callbackJournalKey(n entities.CallbackNotification) []byte {
	var buf bytes.Buffer
	buf.WriteString(n.PaymentID)
	buf.WriteByte(0)
	buf.WriteString(n.ReceivedAt.UTC().Format("2006-01-02T15:04:05.000000000Z"))
	buf.WriteByte(0)
	buf.WriteString(n.ID)
	return buf.Bytes()
}
