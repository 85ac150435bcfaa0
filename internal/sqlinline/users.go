package sqlinline

const QInsertUser = `--sql fdd8c0e3-3e0b-41ef-8654-1aab5f8d20ed
insert into users(id, name, email, phone, password_hash, role, created_at, updated_at)
values (gen_random_uuid(), $1::text, lower($2::text), $3::text, $4::text, $5::text, now(), now())
returning id, name, email, phone, password_hash, role, created_at, updated_at;
`

const QSelectUserByID = `--sql d736f75f-e9d1-4875-b2c1-41b2d50851c9
select id, name, email, phone, password_hash, role, created_at, updated_at
from users
where id = $1::uuid;
`

const QSelectUserByEmail = `--sql 8e033187-f45f-49d5-8f04-80c8759f5229
select id, name, email, phone, password_hash, role, created_at, updated_at
from users
where email = lower($1::text);
`

const QSearchUserIDs = `--sql f4832f06-8be5-442b-aa4c-bb345e17a431
select id
from users
where name ilike '%' || $1::text || '%'
   or email ilike '%' || $1::text || '%';
`
