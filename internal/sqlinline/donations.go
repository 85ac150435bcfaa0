package sqlinline

const QInsertDonation = `--sql feeb27bb-f4cb-441a-a79f-47ba2d41f51c
insert into donations(id, user_id, campaign_id, amount_int, donation_type, category, payment_method, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::uuid, $3::bigint, $4::text, $5::text, $6::text, 'Pending', now(), now())
returning id, status, created_at, updated_at;
`

const QSelectDonationByID = `--sql e583f380-f008-4cbe-adde-6d2dbb1ced93
select id, user_id, campaign_id, amount_int, donation_type, category, payment_method, status, created_at, updated_at
from donations
where id = $1::uuid;
`

const QSelectDonationDetail = `--sql 457e5f56-2bdd-4bbd-b53f-1d19fc8b0981
select d.id, d.user_id, d.campaign_id, d.amount_int, d.donation_type, d.category, d.payment_method, d.status, d.created_at, d.updated_at,
       u.name, u.email, c.title
from donations d
join users u on u.id = d.user_id
left join campaigns c on c.id = d.campaign_id
where d.id = $1::uuid;
`

const QMarkDonationVerified = `--sql 5d85ccca-8e3b-4ca9-aaf4-d8b58b32d0d6
update donations
set status = 'Verified', updated_at = now()
where id = $1::uuid
  and status = 'Pending';
`

const QListDonationsByDonor = `--sql d86f6111-d68a-482d-8902-fe015a21fe8f
select d.id, d.user_id, d.campaign_id, d.amount_int, d.donation_type, d.category, d.payment_method, d.status, d.created_at, d.updated_at,
       u.name, u.email, c.title
from donations d
join users u on u.id = d.user_id
left join campaigns c on c.id = d.campaign_id
where d.user_id = $1::uuid;
`

const QListDonationsFiltered = `--sql 8f0505e8-46be-42b1-b46d-a1bd1c928d41
select d.id, d.user_id, d.campaign_id, d.amount_int, d.donation_type, d.category, d.payment_method, d.status, d.created_at, d.updated_at,
       u.name, u.email, c.title
from donations d
join users u on u.id = d.user_id
left join campaigns c on c.id = d.campaign_id
where ($1::text is null or d.donation_type = $1)
  and ($2::text is null or d.status = $2)
  and ($3::timestamptz is null or d.created_at >= $3)
  and ($4::timestamptz is null or d.created_at <= $4)
  and ($5::uuid[] is null or d.user_id = any($5))
order by d.created_at desc;
`
