package sqlinline

const QPlatformStats = `--sql 8935a792-cb0e-4c54-9a60-7d6a72edf185
select
  coalesce((select sum(amount_int) from donations where status = 'Verified'), 0),
  (select count(*) from users where role = 'donor'),
  (select count(*) from campaigns where status = 'Active'),
  (select count(*) from donations where status = 'Pending');
`

const QUserDonationSummaries = `--sql 29f1add9-b40e-41f8-afa9-631d3ecdd4b1
select u.id, u.name, u.email, u.phone, u.role, u.created_at,
       count(d.id),
       coalesce(sum(d.amount_int), 0),
       coalesce(sum(d.amount_int) filter (where d.status = 'Verified'), 0)
from users u
left join donations d on d.user_id = u.id
where $1::text = ''
   or u.name ilike '%' || $1 || '%'
   or u.email ilike '%' || $1 || '%'
group by u.id, u.name, u.email, u.phone, u.role, u.created_at
order by u.created_at desc;
`
