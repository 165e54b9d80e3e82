package database

import "context"

// schema is applied at startup. Every statement is idempotent so the
// process can restart against an already-provisioned database.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email       TEXT NOT NULL UNIQUE,
	password    TEXT NOT NULL,
	name        TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	description TEXT,
	type        TEXT CHECK (type IN ('product', 'event')),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL,
	description TEXT,
	price       NUMERIC(10,2) NOT NULL,
	category_id UUID NOT NULL REFERENCES categories(id),
	images      TEXT[] NOT NULL DEFAULT '{}',
	video       TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name             TEXT NOT NULL,
	type             TEXT NOT NULL CHECK (type IN ('workshop', 'bootcamp', 'event', 'course')),
	description      TEXT,
	price            NUMERIC(10,2),
	reduction        NUMERIC(10,2),
	duration         TEXT,
	start_date       TIMESTAMPTZ,
	periode          TEXT,
	animator         TEXT,
	location         TEXT NOT NULL DEFAULT 'online' CHECK (location IN ('online', 'in_person', 'hybrid')),
	address          TEXT,
	certification    BOOLEAN NOT NULL DEFAULT FALSE,
	cover_image      TEXT NOT NULL,
	objectives       TEXT[] NOT NULL DEFAULT '{}',
	required         TEXT[] NOT NULL DEFAULT '{}',
	included         TEXT[] NOT NULL DEFAULT '{}',
	max_participants INTEGER,
	category_id      UUID REFERENCES categories(id),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS event_products (
	event_id   UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	PRIMARY KEY (event_id, product_id)
);

CREATE TABLE IF NOT EXISTS workshops (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name             TEXT NOT NULL,
	description      TEXT,
	start_date       TIMESTAMPTZ NOT NULL,
	end_date         TIMESTAMPTZ NOT NULL,
	location         TEXT NOT NULL,
	instructor       TEXT,
	max_participants INTEGER,
	price            NUMERIC(10,2),
	cover_image      TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workshop_products (
	workshop_id UUID NOT NULL REFERENCES workshops(id) ON DELETE CASCADE,
	product_id  UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	PRIMARY KEY (workshop_id, product_id)
);

CREATE TABLE IF NOT EXISTS participants (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL,
	phone         TEXT,
	date_of_birth DATE,
	address       TEXT,
	city          TEXT,
	country       TEXT,
	event_id      UUID REFERENCES events(id) ON DELETE SET NULL,
	workshop_id   UUID REFERENCES workshops(id) ON DELETE SET NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CHECK (event_id IS NULL OR workshop_id IS NULL)
);

-- One signup per (email, parent). The application pre-checks this for a
-- friendly error; these indexes are the source of truth under races.
CREATE UNIQUE INDEX IF NOT EXISTS ux_participants_event_email
	ON participants (event_id, lower(email)) WHERE event_id IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS ux_participants_workshop_email
	ON participants (workshop_id, lower(email)) WHERE workshop_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS event_participants (
	event_id       UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	participant_id UUID NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
	PRIMARY KEY (event_id, participant_id)
);

CREATE TABLE IF NOT EXISTS workshop_participants (
	workshop_id    UUID NOT NULL REFERENCES workshops(id) ON DELETE CASCADE,
	participant_id UUID NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
	PRIMARY KEY (workshop_id, participant_id)
);

CREATE TABLE IF NOT EXISTS bootcamps (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	category_id UUID NOT NULL REFERENCES categories(id),
	types       TEXT[] NOT NULL DEFAULT '{}',
	description TEXT,
	images      TEXT[] NOT NULL DEFAULT '{}',
	date_debut  TIMESTAMPTZ NOT NULL,
	date_fin    TIMESTAMPTZ NOT NULL,
	periode     TEXT,
	location    TEXT NOT NULL,
	price       TEXT NOT NULL,
	animator    TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bootcamp_products (
	bootcamp_id UUID NOT NULL REFERENCES bootcamps(id) ON DELETE CASCADE,
	product_id  UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	PRIMARY KEY (bootcamp_id, product_id)
);

CREATE TABLE IF NOT EXISTS projects (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	description TEXT,
	status      TEXT,
	start_date  TIMESTAMPTZ,
	end_date    TIMESTAMPTZ,
	budget      NUMERIC(12,2),
	client      TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS services (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	description TEXT,
	category    TEXT,
	price       NUMERIC(10,2),
	duration    TEXT,
	provider    TEXT,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS blogs (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title       TEXT NOT NULL,
	slug        TEXT NOT NULL,
	cover       TEXT NOT NULL,
	images      TEXT[] NOT NULL DEFAULT '{}',
	video       TEXT,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reviews (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	full_name      TEXT NOT NULL,
	image          TEXT,
	poste_actuelle TEXT,
	stars          INTEGER NOT NULL CHECK (stars BETWEEN 1 AND 5),
	message        TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS partners (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	specialite TEXT NOT NULL,
	logo       TEXT,
	website    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hero_sections (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	images      TEXT[] NOT NULL DEFAULT '{}',
	buttons     JSONB NOT NULL DEFAULT '[]',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	full_name       TEXT NOT NULL,
	email           TEXT NOT NULL,
	phone_number    TEXT NOT NULL,
	delivery        BOOLEAN NOT NULL DEFAULT FALSE,
	address         TEXT,
	note            TEXT,
	delivery_method TEXT,
	product_name    TEXT,
	quantity        INTEGER,
	unit_price      NUMERIC(10,2),
	total_price     NUMERIC(12,2),
	order_date      TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id   UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	PRIMARY KEY (order_id, product_id)
);
`

func (d *Database) ensureSchema(ctx context.Context) error {
	_, err := d.sqlx.ExecContext(ctx, schema)
	return err
}
