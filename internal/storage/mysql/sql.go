package mysql

// -----------------------------------------------------------------------------
// HOTELS
// -----------------------------------------------------------------------------

const countHotelsSQL = `SELECT COUNT(*) FROM hotels`

const listHotelsSQL = `
SELECT hotel_uid, name, country, city, address, stars, price
FROM hotels
ORDER BY id
LIMIT ? OFFSET ?
`

const getHotelSQL = `
SELECT hotel_uid, name, country, city, address, stars, price
FROM hotels
WHERE hotel_uid = ?
`

// -----------------------------------------------------------------------------
// RESERVATIONS
// -----------------------------------------------------------------------------

// Dates are formatted in SQL so rows scan into plain strings.
const selectReservationSQL = `
SELECT
  r.reservation_uid,
  r.username,
  r.payment_uid,
  r.status,
  DATE_FORMAT(r.start_date, '%Y-%m-%d') AS start_date,
  DATE_FORMAT(r.end_date, '%Y-%m-%d')   AS end_date,
  h.hotel_uid,
  h.name,
  h.country,
  h.city,
  h.address,
  h.stars,
  h.price
FROM reservations r
JOIN hotels h ON h.id = r.hotel_id
`

const listReservationsSQL = selectReservationSQL + `
WHERE r.username = ?
ORDER BY r.id
`

const getReservationSQL = selectReservationSQL + `
WHERE r.reservation_uid = ? AND r.username = ?
`

const insertReservationSQL = `
INSERT INTO reservations
  (reservation_uid, username, payment_uid, hotel_id, status, start_date, end_date)
SELECT ?, ?, ?, h.id, ?, ?, ?
FROM hotels h
WHERE h.hotel_uid = ?
`

const updateReservationStatusSQL = `
UPDATE reservations SET status = ?
WHERE reservation_uid = ? AND username = ?
`

// -----------------------------------------------------------------------------
// PAYMENTS
// -----------------------------------------------------------------------------

const insertPaymentSQL = `
INSERT INTO payments (payment_uid, status, price)
VALUES (:payment_uid, :status, :price)
`

const getPaymentSQL = `SELECT payment_uid, status, price FROM payments WHERE payment_uid = ?`

// expanded by sqlx.In
const listPaymentsSQL = `SELECT payment_uid, status, price FROM payments WHERE payment_uid IN (?) ORDER BY id`

const deletePaymentSQL = `DELETE FROM payments WHERE payment_uid = ?`
