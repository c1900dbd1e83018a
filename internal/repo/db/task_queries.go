package db

const taskListQ = `
SELECT id, username, title, description, completed, created_at, updated_at
FROM tasks
WHERE username = $1
ORDER BY created_at DESC
`

const taskGetQ = `
SELECT id, username, title, description, completed, created_at, updated_at
FROM tasks
WHERE id = $1 AND username = $2
`

const taskCreateQ = `
INSERT INTO tasks (id, username, title, description, completed)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

const taskUpdateQ = `
UPDATE tasks
SET title       = $1,
    description = $2,
    completed   = $3,
    updated_at  = NOW()
WHERE id = $4 AND username = $5
`

const taskDeleteQ = `
DELETE FROM tasks
WHERE id = $1 AND username = $2
`
