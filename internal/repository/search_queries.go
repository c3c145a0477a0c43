package repository

import "github.com/Kel2793/Homely-Real-Estate-App/internal/search"

// searchPredicates is the fixed family of range scans over the listing
// payload, one per non-empty filter combination, keyed by which filters
// are set. Placeholders are numbered in the canonical field order of
// search.Filters.Args: squareFootage, price, bedroomCount,
// bathroomCount, lotSize. squareFootage, bedroomCount, bathroomCount
// and lotSize are inclusive lower bounds; price is a strict upper
// bound. The table is enumerated deliberately so every one of the 31
// combinations is served; completeness is asserted by tests.
var searchPredicates = map[search.Mask]string{
	search.BySquareFootage: `(payload->>'squareFootage')::int >= $1`,

	search.ByMaxPrice: `(payload->>'price')::int < $1`,

	search.BySquareFootage | search.ByMaxPrice: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2`,

	search.ByBedroomCount: `(payload->>'bedroomCount')::int >= $1`,

	search.BySquareFootage | search.ByBedroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bedroomCount')::int >= $2`,

	search.ByMaxPrice | search.ByBedroomCount: `(payload->>'price')::int < $1 AND (payload->>'bedroomCount')::int >= $2`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBedroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bedroomCount')::int >= $3`,

	search.ByBathroomCount: `(payload->>'bathroomCount')::float8 >= $1`,

	search.BySquareFootage | search.ByBathroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bathroomCount')::float8 >= $2`,

	search.ByMaxPrice | search.ByBathroomCount: `(payload->>'price')::int < $1 AND (payload->>'bathroomCount')::float8 >= $2`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBathroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bathroomCount')::float8 >= $3`,

	search.ByBedroomCount | search.ByBathroomCount: `(payload->>'bedroomCount')::int >= $1 AND (payload->>'bathroomCount')::float8 >= $2`,

	search.BySquareFootage | search.ByBedroomCount | search.ByBathroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'bathroomCount')::float8 >= $3`,

	search.ByMaxPrice | search.ByBedroomCount | search.ByBathroomCount: `(payload->>'price')::int < $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'bathroomCount')::float8 >= $3`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBedroomCount | search.ByBathroomCount: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bedroomCount')::int >= $3 AND (payload->>'bathroomCount')::float8 >= $4`,

	search.ByLotSize: `(payload->>'lotSize')::float8 >= $1`,

	search.BySquareFootage | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'lotSize')::float8 >= $2`,

	search.ByMaxPrice | search.ByLotSize: `(payload->>'price')::int < $1 AND (payload->>'lotSize')::float8 >= $2`,

	search.BySquareFootage | search.ByMaxPrice | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.ByBedroomCount | search.ByLotSize: `(payload->>'bedroomCount')::int >= $1 AND (payload->>'lotSize')::float8 >= $2`,

	search.BySquareFootage | search.ByBedroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.ByMaxPrice | search.ByBedroomCount | search.ByLotSize: `(payload->>'price')::int < $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBedroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bedroomCount')::int >= $3 AND (payload->>'lotSize')::float8 >= $4`,

	search.ByBathroomCount | search.ByLotSize: `(payload->>'bathroomCount')::float8 >= $1 AND (payload->>'lotSize')::float8 >= $2`,

	search.BySquareFootage | search.ByBathroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bathroomCount')::float8 >= $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.ByMaxPrice | search.ByBathroomCount | search.ByLotSize: `(payload->>'price')::int < $1 AND (payload->>'bathroomCount')::float8 >= $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBathroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bathroomCount')::float8 >= $3 AND (payload->>'lotSize')::float8 >= $4`,

	search.ByBedroomCount | search.ByBathroomCount | search.ByLotSize: `(payload->>'bedroomCount')::int >= $1 AND (payload->>'bathroomCount')::float8 >= $2 AND (payload->>'lotSize')::float8 >= $3`,

	search.BySquareFootage | search.ByBedroomCount | search.ByBathroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'bathroomCount')::float8 >= $3 AND (payload->>'lotSize')::float8 >= $4`,

	search.ByMaxPrice | search.ByBedroomCount | search.ByBathroomCount | search.ByLotSize: `(payload->>'price')::int < $1 AND (payload->>'bedroomCount')::int >= $2 AND (payload->>'bathroomCount')::float8 >= $3 AND (payload->>'lotSize')::float8 >= $4`,

	search.BySquareFootage | search.ByMaxPrice | search.ByBedroomCount | search.ByBathroomCount | search.ByLotSize: `(payload->>'squareFootage')::int >= $1 AND (payload->>'price')::int < $2 AND (payload->>'bedroomCount')::int >= $3 AND (payload->>'bathroomCount')::float8 >= $4 AND (payload->>'lotSize')::float8 >= $5`,
}
