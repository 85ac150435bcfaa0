package sqlinline

const QInsertCampaign = `--sql 440613ea-5f3e-476f-9e36-9e9886421bfb
insert into campaigns(id, title, description, goal_amount, collected_amount, deadline, status, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::bigint, 0, $4::timestamptz, 'Active', now(), now())
returning id, collected_amount, status, created_at, updated_at;
`

const QSelectCampaignByID = `--sql c7daf9e6-45d6-4043-b127-7df57928c2fa
select id, title, description, goal_amount, collected_amount, deadline, status, created_at, updated_at
from campaigns
where id = $1::uuid;
`

const QListCampaigns = `--sql 1c14c106-6f0c-41d2-8d67-713ff3bea770
select id, title, description, goal_amount, collected_amount, deadline, status, created_at, updated_at
from campaigns
order by created_at desc;
`

const QUpdateCampaign = `--sql 92df91a9-450e-4f65-bf8c-dbcf88f389e7
update campaigns
set title       = coalesce($2::text, title),
    description = coalesce($3::text, description),
    goal_amount = coalesce($4::bigint, goal_amount),
    deadline    = coalesce($5::timestamptz, deadline),
    status      = case when status = 'Completed' then status
                       else coalesce($6::text, status) end,
    updated_at  = now()
where id = $1::uuid
returning id, title, description, goal_amount, collected_amount, deadline, status, created_at, updated_at;
`

const QDeleteCampaign = `--sql 841a57d5-c280-4f99-b259-e2f20b376dfa
delete from campaigns
where id = $1::uuid;
`

const QSweepExpiredCampaigns = `--sql 4c468d43-4527-4883-8190-bb5c612c7cbc
update campaigns
set status = 'Completed', updated_at = now()
where status = 'Active'
  and deadline < $1::timestamptz;
`

const QIncrementCollected = `--sql cd9f7dd3-8e1c-46fd-844a-ff66ac7eb823
update campaigns
set collected_amount = collected_amount + $2::bigint,
    updated_at = now()
where id = $1::uuid;
`

const QReconcileCollected = `--sql 138d69f8-e055-4e46-ae70-ca1d18fb3efd
update campaigns c
set collected_amount = coalesce((
        select sum(d.amount_int)
        from donations d
        where d.campaign_id = c.id
          and d.status = 'Verified'
    ), 0),
    updated_at = now();
`
