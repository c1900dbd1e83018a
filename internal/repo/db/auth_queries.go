package db

const userCreateQ = `
INSERT INTO users (username, password)
VALUES ($1, $2)
`

const userGetByUsernameQ = `
SELECT username, password, created_at
FROM users
WHERE username = $1
`

const tokenCreateQ = `
INSERT INTO refresh_tokens (username, token, token_id, device, created_at, last_used)
VALUES ($1, $2, $3, $4, $5, $5)
`

const tokenPruneQ = `
DELETE FROM refresh_tokens
WHERE username = $1
  AND id NOT IN (
    SELECT id
    FROM refresh_tokens
    WHERE username = $1
    ORDER BY id DESC
    LIMIT $2
)
`

const tokenTouchQ = `
UPDATE refresh_tokens
SET last_used = $1
WHERE username = $2 AND token = $3
`

const tokenDeleteQ = `
DELETE FROM refresh_tokens
WHERE username = $1 AND token = $2
`

const tokenDeleteAllQ = `
DELETE FROM refresh_tokens
WHERE username = $1
`
